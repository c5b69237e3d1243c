// Package schemas embeds the JSON Schema files and registers them with the
// batch package on import. CLI entry points should import this package with
// a blank identifier: import _ "github.com/kjourdan1/hashenc/schemas"
package schemas

import (
	"embed"

	"github.com/kjourdan1/hashenc/internal/batch"
)

//go:embed batch-v1.schema.json
var fs embed.FS

func init() {
	data, err := fs.ReadFile("batch-v1.schema.json")
	if err != nil {
		panic("schemas: failed to read embedded batch-v1.schema.json: " + err.Error())
	}
	batch.SetSchema(data)
}
