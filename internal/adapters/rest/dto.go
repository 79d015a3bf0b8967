package rest

import (
	"time"

	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/domain"
)

// --- Входящие DTO ---

type CreateCoachRequest struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Qualification string `json:"qualification"`
}

type UpdateCoachRequest struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Phone         string `json:"phone"`
	Qualification string `json:"qualification"`
}

type CreatePlayerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Position  string `json:"position"`
	TeamID    string `json:"team_id,omitempty"`
	BirthDate string `json:"birth_date,omitempty"` // формат 2006-01-02
}

type UpdatePlayerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Position  string `json:"position"`
	TeamID    string `json:"team_id,omitempty"`
}

type CreateTeamRequest struct {
	Name    string `json:"name"`
	Season  string `json:"season"`
	CoachID string `json:"coach_id,omitempty"`
}

type SubmitEvaluationRequest struct {
	PlayerID  string `json:"player_id"`
	Technical int    `json:"technical"`
	Tactical  int    `json:"tactical"`
	Physical  int    `json:"physical"`
	Attitude  int    `json:"attitude"`
	Comment   string `json:"comment"`
}

type AssignHomeworkRequest struct {
	PlayerID    string   `json:"player_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Drills      []string `json:"drills"`
	DueDate     string   `json:"due_date,omitempty"` // RFC3339
}

type CreateDrillRequest struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
	VideoURL    string `json:"video_url"`
}

type CreateAnnouncementRequest struct {
	TeamID  string `json:"team_id"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

type RosterRowRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Position  string `json:"position"`
}

type ImportRosterRequest struct {
	FileName string             `json:"file_name"`
	TeamID   string             `json:"team_id,omitempty"`
	Rows     []RosterRowRequest `json:"rows"`
}

// --- Исходящие DTO ---

type CoachResponse struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Phone         string    `json:"phone"`
	Qualification string    `json:"qualification"`
	CreatedAt     time.Time `json:"created_at"`
}

// CoachAccountResponse возвращается только при создании: временный пароль
// наружу больше нигде не отдается.
type CoachAccountResponse struct {
	CoachResponse
	Email        string `json:"email"`
	Username     string `json:"username"`
	TempPassword string `json:"temp_password"`
}

type PlayerResponse struct {
	ID        string     `json:"id"`
	TeamID    *string    `json:"team_id,omitempty"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Position  string     `json:"position"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type PlayerAccountResponse struct {
	PlayerResponse
	Email        string `json:"email"`
	Username     string `json:"username"`
	TempPassword string `json:"temp_password"`
}

type TeamResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Season    string    `json:"season"`
	CoachID   *string   `json:"coach_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type EvaluationResponse struct {
	ID        string    `json:"id"`
	PlayerID  string    `json:"player_id"`
	Technical int       `json:"technical"`
	Tactical  int       `json:"tactical"`
	Physical  int       `json:"physical"`
	Attitude  int       `json:"attitude"`
	Average   float64   `json:"average"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type HomeworkResponse struct {
	ID          string     `json:"id"`
	PlayerID    string     `json:"player_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Drills      []string   `json:"drills"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type DrillResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	VideoURL    string    `json:"video_url"`
	CreatedAt   time.Time `json:"created_at"`
}

type AnnouncementResponse struct {
	ID        string    `json:"id"`
	TeamID    string    `json:"team_id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type ImportLogResponse struct {
	ID        string    `json:"id"`
	FileName  string    `json:"file_name"`
	Total     int       `json:"total"`
	Succeeded int       `json:"succeeded"`
	Failed    int       `json:"failed"`
	Errors    []string  `json:"errors,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// --- Конвертеры домен -> DTO ---

func toCoachResponse(coach *domain.Coach) CoachResponse {
	return CoachResponse{
		ID:            coach.ID.String(),
		FirstName:     coach.FirstName,
		LastName:      coach.LastName,
		Phone:         coach.Phone,
		Qualification: coach.Qualification,
		CreatedAt:     coach.CreatedAt,
	}
}

func toCoachAccountResponse(account *domain.CoachAccount) CoachAccountResponse {
	return CoachAccountResponse{
		CoachResponse: toCoachResponse(account.Coach),
		Email:         account.User.Email,
		Username:      account.User.Username,
		TempPassword:  account.TempPassword,
	}
}

func toPlayerResponse(player *domain.Player) PlayerResponse {
	resp := PlayerResponse{
		ID:        player.ID.String(),
		FirstName: player.FirstName,
		LastName:  player.LastName,
		Position:  player.Position,
		BirthDate: player.BirthDate,
		CreatedAt: player.CreatedAt,
	}
	if player.TeamID != nil {
		teamID := player.TeamID.String()
		resp.TeamID = &teamID
	}
	return resp
}

func toPlayerAccountResponse(account *domain.PlayerAccount) PlayerAccountResponse {
	return PlayerAccountResponse{
		PlayerResponse: toPlayerResponse(account.Player),
		Email:          account.User.Email,
		Username:       account.User.Username,
		TempPassword:   account.TempPassword,
	}
}

func toTeamResponse(team *domain.Team) TeamResponse {
	resp := TeamResponse{
		ID:        team.ID.String(),
		Name:      team.Name,
		Season:    team.Season,
		CreatedAt: team.CreatedAt,
	}
	if team.CoachID != nil {
		coachID := team.CoachID.String()
		resp.CoachID = &coachID
	}
	return resp
}

func toEvaluationResponse(evaluation *domain.Evaluation) EvaluationResponse {
	return EvaluationResponse{
		ID:        evaluation.ID.String(),
		PlayerID:  evaluation.PlayerID.String(),
		Technical: evaluation.Technical,
		Tactical:  evaluation.Tactical,
		Physical:  evaluation.Physical,
		Attitude:  evaluation.Attitude,
		Average:   evaluation.Average(),
		Comment:   evaluation.Comment,
		CreatedAt: evaluation.CreatedAt,
	}
}

func toHomeworkResponse(homework *domain.Homework) HomeworkResponse {
	return HomeworkResponse{
		ID:          homework.ID.String(),
		PlayerID:    homework.PlayerID.String(),
		Title:       homework.Title,
		Description: homework.Description,
		Drills:      homework.Drills,
		DueDate:     homework.DueDate,
		CreatedAt:   homework.CreatedAt,
	}
}

func toDrillResponse(drill *domain.Drill) DrillResponse {
	return DrillResponse{
		ID:          drill.ID.String(),
		Title:       drill.Title,
		Category:    drill.Category,
		Description: drill.Description,
		VideoURL:    drill.VideoURL,
		CreatedAt:   drill.CreatedAt,
	}
}

func toAnnouncementResponse(announcement *domain.Announcement) AnnouncementResponse {
	return AnnouncementResponse{
		ID:        announcement.ID.String(),
		TeamID:    announcement.TeamID.String(),
		Title:     announcement.Title,
		Message:   announcement.Message,
		CreatedAt: announcement.CreatedAt,
	}
}

func toImportLogResponse(log *domain.ImportLog) ImportLogResponse {
	return ImportLogResponse{
		ID:        log.ID.String(),
		FileName:  log.FileName,
		Total:     log.Total,
		Succeeded: log.Succeeded,
		Failed:    log.Failed,
		Errors:    log.Errors,
		CreatedAt: log.CreatedAt,
	}
}
