package models

type LocationKind string

const (
	LocationHome LocationKind = "home"
	LocationRoom LocationKind = "room"
	LocationItem LocationKind = "item"
)

// Location references a place in the home > room > item hierarchy.
type Location struct {
	Kind LocationKind
	ID   string
}

func (l Location) IsZero() bool {
	return l.Kind == "" || l.ID == ""
}
