package domain

// ToneShare is one slice of a creator's tone mix. Percentages across a
// mix are expected to sum to roughly 100; nothing enforces exactness.
type ToneShare struct {
	Tone    string  `json:"tone"`
	Percent float64 `json:"percent"`
}

// CreatorProfile carries the already-validated onboarding answers that
// seed every generation request. The identity provider owns its lifecycle.
type CreatorProfile struct {
	ID             string      `json:"id"`
	UserID         string      `json:"user_id"`
	Niche          string      `json:"niche"`
	Audience       string      `json:"audience"`
	ToneMix        []ToneShare `json:"tone_mix"`
	Catchphrases   []string    `json:"catchphrases"`
	Boundaries     []string    `json:"boundaries"`
	CreatorCountry string      `json:"creator_country"`
	TargetCountry  string      `json:"target_country"`
}

// ToneNames returns the mix's tone labels in declaration order.
func (p *CreatorProfile) ToneNames() []string {
	names := make([]string, 0, len(p.ToneMix))
	for _, share := range p.ToneMix {
		names = append(names, share.Tone)
	}
	return names
}
