package domain

import "fmt"

const DefaultAvatarID = 1

type Avatar struct {
	ID    int
	Emoji string
	Color string
}

// AvatarCatalog is indexed from 1; position 0 holds avatar 1.
var AvatarCatalog = []Avatar{
	{ID: 1, Emoji: "🦊", Color: "208"},
	{ID: 2, Emoji: "🐼", Color: "252"},
	{ID: 3, Emoji: "🐸", Color: "82"},
	{ID: 4, Emoji: "🐙", Color: "170"},
	{ID: 5, Emoji: "🦉", Color: "137"},
	{ID: 6, Emoji: "🐳", Color: "39"},
	{ID: 7, Emoji: "🦁", Color: "214"},
	{ID: 8, Emoji: "🐝", Color: "226"},
	{ID: 9, Emoji: "🦄", Color: "213"},
	{ID: 10, Emoji: "🐢", Color: "35"},
	{ID: 11, Emoji: "🐧", Color: "250"},
	{ID: 12, Emoji: "🦋", Color: "75"},
}

// LookupAvatar falls back to the first catalog entry for unknown ids.
func LookupAvatar(id int) Avatar {
	if id < 1 || id > len(AvatarCatalog) {
		return AvatarCatalog[0]
	}

	return AvatarCatalog[id-1]
}

func ValidateAvatarID(id int) error {
	if id < 1 || id > len(AvatarCatalog) {
		return fmt.Errorf("%w: %d (expected 1-%d)", ErrInvalidAvatar, id, len(AvatarCatalog))
	}

	return nil
}
