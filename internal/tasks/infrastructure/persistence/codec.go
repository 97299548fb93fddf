package persistence

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/felixgeelhaar/todo/internal/tasks/domain"
)

// taskRecord is the on-disk shape of a task in the file backend.
type taskRecord struct {
	ID          int32   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Completed   bool    `json:"completed"`
}

// EncodeTasks serializes tasks, in order, as an indented JSON array.
func EncodeTasks(tasks []*domain.Task) ([]byte, error) {
	records := make([]taskRecord, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, taskRecord{
			ID:          t.ID(),
			Name:        t.Name(),
			Description: t.DescriptionPtr(),
			Completed:   t.Completed(),
		})
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerialization, err)
	}
	return append(data, '\n'), nil
}

// DecodeTasks parses data produced by EncodeTasks. Blank input decodes to
// an empty list.
func DecodeTasks(data []byte) ([]*domain.Task, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []*domain.Task{}, nil
	}

	var records []taskRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerialization, err)
	}

	tasks := make([]*domain.Task, 0, len(records))
	for _, r := range records {
		tasks = append(tasks, domain.RehydrateTask(r.ID, r.Name, r.Description, r.Completed))
	}
	return tasks, nil
}
