package dto

// EntityEventMessage is the payload carried on the entity event topic. One
// message per mutation; cascades emit one message for the whole operation
// with the affected ids listed.
type EntityEventMessage struct {
	EventType  string                 `json:"event_type"`
	EntityKind string                 `json:"entity_kind"`
	EntityIds  []uint                 `json:"entity_ids"`
	ActorId    *uint                  `json:"actor_id,omitempty"`
	Details    map[string]interface{} `json:"details,omitempty"`
}
