package service

import (
	"context"
	"encoding/json"

	"taxledger/internal/model"
	"taxledger/internal/repository"
)

// writeAuditLog stores one audit entry. Details are serialized as JSON.
func writeAuditLog(ctx context.Context, repo repository.AuditRepository, action, entityID, entityName string, details interface{}) error {
	detailsJSON, err := json.Marshal(details)
	if err != nil {
		return err
	}
	return repo.Log(ctx, &model.AuditLog{
		Action:     action,
		EntityID:   entityID,
		EntityName: entityName,
		Details:    string(detailsJSON),
	})
}
