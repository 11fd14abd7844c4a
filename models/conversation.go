package models

import "time"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// TurnKind tags which variant a Turn holds.
type TurnKind string

const (
	TurnText TurnKind = "text"
	TurnMap  TurnKind = "map"
)

// Turn is one message in the conversation. A text turn carries Text only; a map
// turn also carries the Points to plot. Turns are never modified after they are
// appended to a session.
type Turn struct {
	Kind      TurnKind   `json:"kind"`
	Role      Role       `json:"role"`
	Text      string     `json:"text"`
	Points    []MapPoint `json:"points,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

func NewTextTurn(role Role, text string) Turn {
	return Turn{Kind: TurnText, Role: role, Text: text, CreatedAt: time.Now().UTC()}
}

func NewMapTurn(role Role, text string, points []MapPoint) Turn {
	cp := make([]MapPoint, len(points))
	copy(cp, points)
	return Turn{Kind: TurnMap, Role: role, Text: text, Points: cp, CreatedAt: time.Now().UTC()}
}

// MapView is the initial camera for a map turn.
type MapView struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Zoom      int     `json:"zoom"`
}

// TurnView is the render-ready form of a Turn.
type TurnView struct {
	Kind   TurnKind   `json:"kind"`
	Role   Role       `json:"role"`
	Text   string     `json:"text"`
	Points []MapPoint `json:"points,omitempty"`
	View   *MapView   `json:"view,omitempty"`
}

const defaultMapZoom = 11

// RenderTurns converts a turn log into views. It depends only on its input, so
// rendering the same log twice yields the same result.
func RenderTurns(turns []Turn) []TurnView {
	views := make([]TurnView, 0, len(turns))
	for _, t := range turns {
		v := TurnView{Kind: t.Kind, Role: t.Role, Text: t.Text}
		if t.Kind == TurnMap && len(t.Points) > 0 {
			v.Points = make([]MapPoint, len(t.Points))
			copy(v.Points, t.Points)
			v.View = centerOf(t.Points)
		}
		views = append(views, v)
	}
	return views
}

func centerOf(points []MapPoint) *MapView {
	var lat, lon float64
	for _, p := range points {
		lat += p.Lat
		lon += p.Lon
	}
	n := float64(len(points))
	return &MapView{Latitude: lat / n, Longitude: lon / n, Zoom: defaultMapZoom}
}

// ChatMessage is one {role, content} pair sent to the assistant.
type ChatMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// History flattens a turn log into assistant messages.
func History(turns []Turn) []ChatMessage {
	msgs := make([]ChatMessage, 0, len(turns))
	for _, t := range turns {
		if t.Role != RoleUser && t.Role != RoleAssistant {
			continue
		}
		msgs = append(msgs, ChatMessage{Role: t.Role, Content: t.Text})
	}
	return msgs
}
