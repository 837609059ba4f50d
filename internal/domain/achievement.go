package domain

// Achievement is the artifact generated for a planet and, optionally, minted
// by an external ledger. TokenID and TransactionHash are stored verbatim.
type Achievement struct {
	Generated       bool    `json:"generated"`
	TokenID         string  `json:"tokenId"`
	ImageURL        string  `json:"imageUrl"`
	TransactionHash string  `json:"transactionHash"`
	Minted          bool    `json:"minted"`
	GeneratedAt     *Millis `json:"generatedAt"`
	MintedAt        *Millis `json:"mintedAt"`
}

// AchievementInput is what a caller supplies when saving an achievement.
// Timestamps and flags are always stamped by the store.
type AchievementInput struct {
	TokenID         string `json:"tokenId"`
	ImageURL        string `json:"imageUrl"`
	TransactionHash string `json:"transactionHash"`
}
