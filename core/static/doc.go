// Package static serves read-only assets from an fs.FS.
//
// The CMS embeds its stylesheet and serves it with FS:
//
//	r.Get("/assets/style.css", static.FS[*cms.Context](assets,
//		static.WithSubFS("assets"),
//		static.WithFSStripPrefix("/assets"),
//		static.WithCacheControl("public, max-age=3600"),
//	))
//
// Directory listing is disabled. Range requests, Last-Modified and content
// type detection come from http.FileServer.
package static
