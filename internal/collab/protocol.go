package collab

import "encoding/json"

type Message struct {
	Type      string          `json:"type"`
	ProjectID string          `json:"projectId,omitempty"`
	ClientID  string          `json:"clientId,omitempty"`
	UserID    string          `json:"userId,omitempty"`
	Seq       int64           `json:"seq,omitempty"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

const (
	TypeWelcome = "welcome"
	TypeError   = "error"

	TypePresenceUpdate = "presence.update"
	TypePresenceState  = "presence.state"
	TypePresenceJoin   = "presence.join"
	TypePresenceLeave  = "presence.leave"

	// Document sync (full document push on join / recovery)
	TypeDocSync = "doc.sync"

	TypeOpSubmit    = "op.submit"
	TypeOpAck       = "op.ack"
	TypeOpNack      = "op.nack"
	TypeOpBroadcast = "op.broadcast"
)

// PresencePayload is a collaborator's live cursor and layer selection.
type PresencePayload struct {
	Cursor      *CursorPos `json:"cursor,omitempty"`
	ActiveLayer string     `json:"activeLayer,omitempty"`
	DisplayName string     `json:"displayName,omitempty"`
}

type CursorPos struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type PresenceStatePayload struct {
	Presences map[string]*PresencePayload `json:"presences"`
}

type PresenceJoinPayload struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
}

type PresenceLeavePayload struct {
	UserID string `json:"userId"`
}

// Operation is one document mutation. Which optional fields are set depends
// on Type.
type Operation struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"`
	ClientSeq int64  `json:"clientSeq"`
	LayerID   string `json:"layerId,omitempty"`

	// layer.create
	Layer json.RawMessage `json:"layer,omitempty"`
	Index *int            `json:"index,omitempty"`

	// layer.params — partial parameter bag merged into the layer
	Params json.RawMessage `json:"parameters,omitempty"`

	// layer.visibility / layer.opacity / layer.reseed
	Visible *bool    `json:"visible,omitempty"`
	Opacity *float64 `json:"opacity,omitempty"`
	Seed    *int64   `json:"seed,omitempty"`

	// layer.reorder
	NewIndex int `json:"newIndex,omitempty"`

	// layer.rename / project.rename
	Name string `json:"name,omitempty"`

	// canvas.update
	Changes json.RawMessage `json:"changes,omitempty"`
}

const (
	OpLayerCreate     = "layer.create"
	OpLayerDelete     = "layer.delete"
	OpLayerParams     = "layer.params"
	OpLayerVisibility = "layer.visibility"
	OpLayerOpacity    = "layer.opacity"
	OpLayerReseed     = "layer.reseed"
	OpLayerReorder    = "layer.reorder"
	OpLayerRename     = "layer.rename"
	OpCanvasUpdate    = "canvas.update"
	OpProjectRename   = "project.rename"
)

type OperationSubmitPayload struct {
	Operation Operation `json:"operation"`
}

type OperationAckPayload struct {
	OperationID     string `json:"operationId"`
	ServerSeq       int64  `json:"serverSeq"`
	ServerTimestamp int64  `json:"serverTimestamp"`
}

type OperationNackPayload struct {
	OperationID string `json:"operationId"`
	Reason      string `json:"reason"`
}

type OperationBroadcastPayload struct {
	Operation Operation `json:"operation"`
	UserID    string    `json:"userId"`
	ServerSeq int64     `json:"serverSeq"`
}
