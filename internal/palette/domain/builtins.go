package palette

// Builtin describes one of the nine well-known palettes every host
// ships with. Their indices (1..9) predate this registry, so the table
// also serves as the first fallback when migrating entries from a
// previously-authoritative implementation: if the accessor hands back
// color data for index 3 with no id attached, the id for index 3 comes
// from here.
type Builtin struct {
	Index  int
	ID     string
	Name   string
	Colors [NumSlots]Color
}

// builtinTable is ordered by index. Index 0 is unused; the registry's
// index space starts at 1.
var builtinTable = []Builtin{
	{
		Index: 1, ID: "archive-olive", Name: "Archive Olive",
		Colors: [NumSlots]Color{
			{R: 31, G: 36, B: 24}, {R: 62, G: 71, B: 45}, {R: 106, G: 117, B: 70},
			{R: 142, G: 152, B: 94}, {R: 87, G: 82, B: 54}, {R: 128, G: 120, B: 82},
			{R: 190, G: 183, B: 124}, {R: 226, G: 223, B: 178},
		},
	},
	{
		Index: 2, ID: "harbor-blue", Name: "Harbor Blue",
		Colors: [NumSlots]Color{
			{R: 18, G: 27, B: 44}, {R: 35, G: 52, B: 82}, {R: 58, G: 92, B: 140},
			{R: 96, G: 136, B: 185}, {R: 44, G: 62, B: 78}, {R: 84, G: 110, B: 128},
			{R: 150, G: 190, B: 215}, {R: 210, G: 233, B: 244},
		},
	},
	{
		Index: 3, ID: "ember-signal", Name: "Ember Signal",
		Colors: [NumSlots]Color{
			{R: 44, G: 16, B: 12}, {R: 92, G: 30, B: 20}, {R: 168, G: 52, B: 30},
			{R: 216, G: 90, B: 48}, {R: 104, G: 58, B: 38}, {R: 160, G: 104, B: 64},
			{R: 240, G: 150, B: 80}, {R: 252, G: 210, B: 150},
		},
	},
	{
		Index: 4, ID: "verdant-patrol", Name: "Verdant Patrol",
		Colors: [NumSlots]Color{
			{R: 16, G: 32, B: 20}, {R: 32, G: 62, B: 38}, {R: 52, G: 104, B: 60},
			{R: 86, G: 148, B: 90}, {R: 60, G: 72, B: 44}, {R: 98, G: 116, B: 70},
			{R: 140, G: 196, B: 120}, {R: 204, G: 236, B: 180},
		},
	},
	{
		Index: 5, ID: "dust-rose", Name: "Dust Rose",
		Colors: [NumSlots]Color{
			{R: 42, G: 24, B: 30}, {R: 80, G: 44, B: 56}, {R: 134, G: 72, B: 92},
			{R: 180, G: 110, B: 130}, {R: 92, G: 70, B: 78}, {R: 140, G: 112, B: 120},
			{R: 216, G: 158, B: 176}, {R: 242, G: 212, B: 222},
		},
	},
	{
		Index: 6, ID: "night-watch", Name: "Night Watch",
		Colors: [NumSlots]Color{
			{R: 12, G: 12, B: 20}, {R: 28, G: 28, B: 44}, {R: 50, G: 50, B: 78},
			{R: 80, G: 80, B: 116}, {R: 40, G: 44, B: 56}, {R: 76, G: 82, B: 100},
			{R: 126, G: 132, B: 168}, {R: 196, G: 200, B: 226},
		},
	},
	{
		Index: 7, ID: "gilded-sand", Name: "Gilded Sand",
		Colors: [NumSlots]Color{
			{R: 48, G: 38, B: 18}, {R: 94, G: 74, B: 34}, {R: 158, G: 126, B: 56},
			{R: 206, G: 170, B: 84}, {R: 110, G: 92, B: 56}, {R: 162, G: 140, B: 92},
			{R: 236, G: 206, B: 120}, {R: 250, G: 238, B: 188},
		},
	},
	{
		Index: 8, ID: "frost-line", Name: "Frost Line",
		Colors: [NumSlots]Color{
			{R: 24, G: 32, B: 38}, {R: 52, G: 68, B: 80}, {R: 94, G: 122, B: 140},
			{R: 140, G: 172, B: 188}, {R: 72, G: 88, B: 96}, {R: 120, G: 140, B: 150},
			{R: 190, G: 216, B: 228}, {R: 234, G: 246, B: 250},
		},
	},
	{
		Index: 9, ID: "royal-plum", Name: "Royal Plum",
		Colors: [NumSlots]Color{
			{R: 32, G: 16, B: 38}, {R: 62, G: 32, B: 74}, {R: 104, G: 54, B: 124},
			{R: 146, G: 88, B: 168}, {R: 70, G: 48, B: 82}, {R: 112, G: 86, B: 126},
			{R: 188, G: 140, B: 210}, {R: 230, G: 204, B: 244},
		},
	},
}

// Builtins returns the well-known palette table in index order.
func Builtins() []Builtin {
	out := make([]Builtin, len(builtinTable))
	copy(out, builtinTable)
	return out
}

// BuiltinIDAt returns the well-known id for a built-in index (1..9).
func BuiltinIDAt(index int) (string, bool) {
	if index < 1 || index > len(builtinTable) {
		return "", false
	}
	return builtinTable[index-1].ID, true
}

// BuiltinNameAt returns the well-known name for a built-in index (1..9).
func BuiltinNameAt(index int) (string, bool) {
	if index < 1 || index > len(builtinTable) {
		return "", false
	}
	return builtinTable[index-1].Name, true
}
