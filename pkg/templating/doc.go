/*
Package templating provides a small, filesystem-based html/template engine for
the Kiln site generator.

A TemplateManager parses full page templates (*.tmpl.html) and shared partials
(*.part.html) from any fs.FS, usually an embed.FS, and executes them with a
FuncMap of date and arithmetic helpers. The fixed external assets every page
links to (logo, hero image, fonts, icons, stylesheet) live in TemplateConfig
so they can be overridden from the Kiln config file.
*/
package templating
