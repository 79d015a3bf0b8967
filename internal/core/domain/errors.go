package domain

import "errors"

// Ошибки-сентинелы, которые Use Cases возвращают наружу.
// REST-слой мапит их на коды ответов, поэтому сравнивать нужно через errors.Is.
var (
	ErrValidation    = errors.New("validation failed")
	ErrNotFound      = errors.New("entity not found")
	ErrEmailInUse    = errors.New("email already in use")
	ErrUsernameInUse = errors.New("username already in use")
	ErrTeamNameInUse = errors.New("team name already in use")
)
