/*
Package site renders the Kiln co-op website.

A Renderer turns member and workshop records into the four pages of the site
(index, about, members, workshops). The workshops page lists upcoming
workshops in date order and ends with a Sunday-first month calendar built by
BuildCalendar. Rendering is pure: the same records and the same "today"
always produce byte-identical pages. Loading records (JSON or SQLite) and
writing pages atomically to disk are provided alongside.
*/
package site
