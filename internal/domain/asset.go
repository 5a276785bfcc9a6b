package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// DemoPrefix marks assets created by the demo seeder
const DemoPrefix = "Demo: "

// maxAssetNameLength bounds asset names in runes
const maxAssetNameLength = 100

// Asset is something the user owns and values over time (an account, a house, a watch)
type Asset struct {
	ID          uuid.UUID
	Name        string
	CreatedDate time.Time
}

// Validate ensures the asset adheres to domain rules
func (a *Asset) Validate() error {
	name := strings.TrimSpace(a.Name)
	if name == "" {
		return fmt.Errorf("%w: asset name cannot be empty", ErrInvalidArgument)
	}
	if utf8.RuneCountInString(name) > maxAssetNameLength {
		return fmt.Errorf("%w: asset name cannot be longer than %d characters", ErrInvalidArgument, maxAssetNameLength)
	}
	return nil
}

// IsDemo reports whether the asset was created by the demo seeder
func (a *Asset) IsDemo() bool {
	return strings.HasPrefix(a.Name, DemoPrefix)
}
