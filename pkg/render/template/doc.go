// Package template defines the engine-agnostic rendering seam that form helper
// hosts implement. Subpackages adapt concrete engines: pongo for pongo2
// (Django-style syntax with block tags) and htmltemplate for html/template.
package template
