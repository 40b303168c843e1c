// Package source installs the go-json driver as the process-wide default when
// imported for its side effect:
//
//	import _ "github.com/tinylobby/sv/source"
package source

import (
	"github.com/tinylobby/sv"
	drvgojson "github.com/tinylobby/sv/source/gojson"
)

func init() { sv.SetJSONDriver(drvgojson.Driver()) }
