package flesch

import "sort"

// Tier names.
const (
	VeryEasy        = "very easy"
	Easy            = "easy"
	FairlyEasy      = "fairly easy"
	Okay            = "okay"
	FairlyDifficult = "fairly difficult"
	Difficult       = "difficult"
	VeryDifficult   = "very difficult"
	Undefined       = "undefined"
)

// Tier is a named band of scores starting at Min.
type Tier struct {
	Min  float64 `yaml:"min" toml:"min" json:"min"`
	Name string  `yaml:"name" toml:"name" json:"name"`
}

// DefaultTiers are the standard Flesch bands.
func DefaultTiers() []Tier {
	return []Tier{
		{Min: 90, Name: VeryEasy},
		{Min: 80, Name: Easy},
		{Min: 70, Name: FairlyEasy},
		{Min: 60, Name: Okay},
		{Min: 50, Name: FairlyDifficult},
		{Min: 30, Name: Difficult},
		{Min: 0, Name: VeryDifficult},
	}
}

// Classify returns the tier holding score. Scores below every band land in
// the lowest one.
func Classify(score float64, tiers []Tier) string {
	if len(tiers) == 0 {
		tiers = DefaultTiers()
	}
	sorted := append([]Tier(nil), tiers...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Min > sorted[j].Min })
	for _, t := range sorted {
		if score >= t.Min {
			return t.Name
		}
	}
	return sorted[len(sorted)-1].Name
}
