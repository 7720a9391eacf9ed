// Package timezones is a choice source for timezone selects. It embeds the
// IANA zone list, ranks search matches, converts zones into helper choices and
// serves an <option> fragment that progressively enhanced selects can swap in.
package timezones
