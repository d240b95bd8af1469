package models

// Schema lists every persisted entity, in migration order. The storage
// handle is built from this list at process start.
func Schema() []any {
	return []any{
		&TouristUser{},
		&HostUser{},
		&Experience{},
		&Discovery{},
		&PopupMsg{},
		&TouristUserLike{},
	}
}
