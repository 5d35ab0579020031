package viewkit

import (
	"embed"
	"io/fs"
)

//go:embed assets/*.css
var embeddedAssets embed.FS

// StylesheetName is the file name of the default component stylesheet inside
// AssetsFS.
const StylesheetName = "viewkit.css"

// AssetsFS exposes the default component stylesheet so Go applications can
// serve it next to the rendered markup.
//
// Typical mount:
//
//	mux.Handle("/assets/viewkit/",
//	  http.StripPrefix("/assets/viewkit/",
//	    http.FileServerFS(viewkit.AssetsFS()),
//	  ),
//	)
func AssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		return embeddedAssets
	}
	return sub
}
