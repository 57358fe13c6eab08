package pkg

import (
	"strings"
	"unsafe"
)

// BytesToString converts bytes slice to a string without extra allocation
func BytesToString(buf []byte) string {
	return *(*string)(unsafe.Pointer(&buf))
}

// SlugifyTag normalizes a tag for lookups and route params
func SlugifyTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}
