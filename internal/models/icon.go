package models

// Icons is the fixed icon set. An entry stores only the key; an unknown or
// absent key renders as "no icon" in the frontend.
//
// The values are SVG path definitions for a 24x24 viewBox.
var Icons = map[string]string{
	"cash":     "M3 6h18v12H3V6zm9 3a3 3 0 1 0 0 6 3 3 0 0 0 0-6zM5 8a2 2 0 0 1-2 2V8h2zm14 0h2v2a2 2 0 0 1-2-2zM5 16a2 2 0 0 0-2-2v2h2zm14 0a2 2 0 0 1 2-2v2h-2z",
	"card":     "M2 5h20v4H2V5zm0 6h20v8H2v-8zm3 4h6v2H5v-2z",
	"home":     "M12 3l9 8h-3v10h-5v-6H11v6H6V11H3l9-8z",
	"cart":     "M4 4h2l2.4 10.4a2 2 0 0 0 2 1.6h7.4a2 2 0 0 0 1.9-1.4L22 8H6.2M9 20a1 1 0 1 0 0 2 1 1 0 0 0 0-2zm8 0a1 1 0 1 0 0 2 1 1 0 0 0 0-2z",
	"food":     "M7 2v8a2 2 0 0 0 2 2v10h2V12a2 2 0 0 0 2-2V2h-2v6h-1V2H9v6H8V2H7zm10 0c-1.7 0-3 2-3 5v6h2v9h2V2h-1z",
	"car":      "M5 11l1.5-4.5A2 2 0 0 1 8.4 5h7.2a2 2 0 0 1 1.9 1.5L19 11v7h-2v-2H7v2H5v-7zm2.5-1h9l-1-3h-7l-1 3zM7.5 15a1.5 1.5 0 1 0 0-3 1.5 1.5 0 0 0 0 3zm9 0a1.5 1.5 0 1 0 0-3 1.5 1.5 0 0 0 0 3z",
	"health":   "M12 21s-8-4.8-8-11a4.5 4.5 0 0 1 8-2.8A4.5 4.5 0 0 1 20 10c0 6.2-8 11-8 11z",
	"gift":     "M4 10h16v11H4V10zm-1-4h18v3H3V6zm9-3s-2-2-4-1-1 4 1 4h3V3zm0 0s2-2 4-1 1 4-1 4h-3V3z",
	"chart":    "M4 20V10h3v10H4zm6.5 0V4h3v16h-3zM17 20v-7h3v7h-3z",
	"piggy":    "M5 12a7 7 0 0 1 13.7-2H21v5h-1.8a7 7 0 0 1-2.2 2.6V20h-3v-1.3a7 7 0 0 1-3 0V20H8v-2.4A7 7 0 0 1 5 12zm10-2a1 1 0 1 0 0 2 1 1 0 0 0 0-2z",
	"wallet":   "M3 6a2 2 0 0 1 2-2h13v3H5a1 1 0 0 0 0 2h15v11H3V6zm13 8a1.5 1.5 0 1 0 3 0 1.5 1.5 0 0 0-3 0z",
	"plane":    "M21 16v-2l-8-5V3.5A1.5 1.5 0 0 0 11.5 2 1.5 1.5 0 0 0 10 3.5V9l-8 5v2l8-2.5V19l-2 1.5V22l3.5-1 3.5 1v-1.5L13 19v-5.5l8 2.5z",
	"book":     "M4 3h14a2 2 0 0 1 2 2v14a2 2 0 0 1-2 2H4V3zm2 2v14h12V5H6zm2 2h8v2H8V7z",
	"repeat":   "M17 2l4 4-4 4V7H7a3 3 0 0 0-3 3H2a5 5 0 0 1 5-5h10V2zM7 22l-4-4 4-4v3h10a3 3 0 0 0 3-3h2a5 5 0 0 1-5 5H7v3z",
	"question": "M12 2a7 7 0 0 1 7 7c0 3-2 4-3.5 5.2-1 .8-1.5 1.3-1.5 2.8h-3c0-2.5 1.2-3.6 2.5-4.7C14.8 11.2 16 10.4 16 9a4 4 0 0 0-8 0H5a7 7 0 0 1 7-7zm-1.5 18h3v2h-3v-2z",
}

// IconKnown reports whether key names an icon in the fixed set.
// The empty key is valid and means "no icon".
func IconKnown(key string) bool {
	if key == "" {
		return true
	}

	_, ok := Icons[key]
	return ok
}
