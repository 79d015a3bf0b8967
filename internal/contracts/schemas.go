package contracts

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"log"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.json
var schemasFS embed.FS

// rosterImportSchema компилируется один раз на старте процесса.
var rosterImportSchema *jsonschema.Schema

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	data, err := schemasFS.ReadFile("schemas/roster_import.json")
	if err != nil {
		log.Fatalf("failed to read roster import schema: %v", err)
	}
	if err := compiler.AddResource("roster_import.json", bytes.NewReader(data)); err != nil {
		log.Fatalf("failed to add roster import schema resource: %v", err)
	}

	rosterImportSchema, err = compiler.Compile("roster_import.json")
	if err != nil {
		log.Fatalf("failed to compile roster import schema: %v", err)
	}
}

// ValidateRosterImport проверяет сырое тело запроса на импорт состава
// по JSON-схеме до того, как оно попадет в ядро.
func ValidateRosterImport(raw []byte) error {
	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}

	if err := rosterImportSchema.Validate(doc); err != nil {
		return fmt.Errorf("roster payload does not match schema: %w", err)
	}
	return nil
}
