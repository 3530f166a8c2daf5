package badge

// Defaults returns the badges available to every student, lowest threshold first.
func Defaults() []Badge {
	return []Badge{
		{Name: "Initiator", Icon: "🚀", Threshold: 10},
		{Name: "Contributor", Icon: "⭐", Threshold: 50},
		{Name: "High-Flyer", Icon: "✈️", Threshold: 100},
		{Name: "Virtuoso", Icon: "🏆", Threshold: 150},
	}
}
