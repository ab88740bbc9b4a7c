// Package assets embeds the stylesheets used by HTML previews.
//
// Styles live under styles/ and are addressed by bare name, without the
// .css extension. Names are validated so they can never reach outside the
// embedded directory.
package assets
