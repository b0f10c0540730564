package ledger

import "github.com/shopspring/decimal"

// DefaultImage is the avatar service used when a new friend is added.
const DefaultImage = "https://i.pravatar.cc/48"

// SeedFriends returns the friends a fresh ledger starts with.
func SeedFriends() []Friend {
	return []Friend{
		{
			ID:      "118836",
			Name:    "დათა",
			Image:   DefaultImage + "?u=118836",
			Balance: decimal.NewFromInt(-7),
		},
		{
			ID:      "933372",
			Name:    "ნანა",
			Image:   DefaultImage + "?u=933372",
			Balance: decimal.NewFromInt(20),
		},
		{
			ID:      "499476",
			Name:    "განა",
			Image:   DefaultImage + "?u=499476",
			Balance: decimal.Zero,
		},
	}
}
