package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"planbase/internal/adapter/http/dto"
	"planbase/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

const dateLayout = "2006-01-02"

// BuildUpdateTaskInput turns a bound update request into a domain input.
// The raw field map distinguishes "absent" from "explicitly null": start,
// finish and parent_id are clearable, so their Set flags track presence.
func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage, updatedBy uint64) (domain.UpdateTaskInput, error) {
	if !hasTaskUpdateFields(raw) {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	var name *string
	if hasJSONField(raw, "name") && req.Name == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	if req.Name != nil {
		value := strings.TrimSpace(*req.Name)
		if value == "" {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		name = &value
	}

	var status *domain.TaskStatus
	if hasJSONField(raw, "status") && req.Status == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	if req.Status != nil {
		value := domain.TaskStatus(*req.Status)
		switch value {
		case domain.TaskStatusTodo, domain.TaskStatusInProgress, domain.TaskStatusFinished:
		default:
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		status = &value
	}

	if hasJSONField(raw, "original_duration") && req.OriginalDuration == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	if req.OriginalDuration != nil && *req.OriginalDuration < 0 {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	start, startSet, err := optionalDate(raw, "start", req.Start)
	if err != nil {
		return domain.UpdateTaskInput{}, err
	}
	finish, finishSet, err := optionalDate(raw, "finish", req.Finish)
	if err != nil {
		return domain.UpdateTaskInput{}, err
	}

	parentIDSet := hasJSONField(raw, "parent_id")
	if parentIDSet && !isJSONNull(raw["parent_id"]) && req.ParentID == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	return domain.UpdateTaskInput{
		Name:             name,
		Status:           status,
		OriginalDuration: req.OriginalDuration,
		Start:            start,
		StartSet:         startSet,
		Finish:           finish,
		FinishSet:        finishSet,
		ParentID:         req.ParentID,
		ParentIDSet:      parentIDSet,
		UpdatedBy:        updatedBy,
	}, nil
}

func optionalDate(raw map[string]json.RawMessage, field string, value *string) (*time.Time, bool, error) {
	set := hasJSONField(raw, field)
	if !set || isJSONNull(raw[field]) {
		return nil, set, nil
	}
	if value == nil {
		return nil, set, ErrInvalidTaskPayload
	}
	parsed, err := time.Parse(dateLayout, *value)
	if err != nil {
		return nil, set, ErrInvalidTaskPayload
	}
	return &parsed, set, nil
}

func hasTaskUpdateFields(raw map[string]json.RawMessage) bool {
	return hasJSONField(raw, "name") ||
		hasJSONField(raw, "status") ||
		hasJSONField(raw, "original_duration") ||
		hasJSONField(raw, "start") ||
		hasJSONField(raw, "finish") ||
		hasJSONField(raw, "parent_id")
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
