package recommender

// Weights is the per-profile-type table distributing the 0-100 score across
// scoring components.
type Weights struct {
	Family     float64
	Notes      float64
	Context    float64
	Popularity float64
	Price      float64
}

// WeightsFor returns the weight table for a profile type. Personal profiles
// lean on the olfactory match; gift profiles shift toward popularity and
// price, which are safer signals when buying for someone else.
func WeightsFor(profileType ProfileType) Weights {
	if profileType == ProfileTypeGift {
		return Weights{
			Family:     0.40,
			Notes:      0.10,
			Context:    0.10,
			Popularity: 0.20,
			Price:      0.10,
		}
	}
	return Weights{
		Family:     0.60,
		Notes:      0.20,
		Context:    0.10,
		Popularity: 0.05,
		Price:      0.05,
	}
}
