package model

import "github.com/google/uuid"

// assignID fills a zero primary key before insert so ids do not depend on a
// database-side generator.
func assignID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}
