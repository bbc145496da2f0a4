package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/kgantsov/ravl/pkg/config"
	"github.com/kgantsov/ravl/pkg/index"
)

type (
	Handler struct {
		index  Index
		config *config.Config
	}
)

func valueString(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	default:
		return fmt.Sprint(value)
	}
}

func entryBody(entry *index.Entry) EntryOutputBody {
	return EntryOutputBody{
		Key:    entry.Key,
		Value:  valueString(entry.Value),
		Rank:   entry.Rank,
		Height: entry.Height,
		Size:   entry.Size,
	}
}

func (h *Handler) PutKey(ctx context.Context, input *PutKeyInput) (*PutKeyOutput, error) {
	key := int32(input.Key)
	value := input.Body.Value

	status := "UPDATED"
	if h.index.Insert(key, value) {
		status = "INSERTED"
	}

	res := &PutKeyOutput{
		Status: http.StatusOK,
		Body: PutKeyOutputBody{
			Status: status,
			Key:    key,
			Value:  value,
		},
	}
	return res, nil
}

func (h *Handler) GetKey(ctx context.Context, input *KeyInput) (*EntryOutput, error) {
	entry, err := h.index.Search(int32(input.Key))
	if err != nil {
		return nil, huma.Error404NotFound("Key not found", err)
	}

	res := &EntryOutput{
		Status: http.StatusOK,
		Body:   entryBody(entry),
	}
	return res, nil
}

func (h *Handler) DeleteKey(ctx context.Context, input *KeyInput) (*DeleteKeyOutput, error) {
	key := int32(input.Key)

	value, err := h.index.Delete(key)
	if err != nil {
		return nil, huma.Error404NotFound("Failed to delete a key", err)
	}

	res := &DeleteKeyOutput{
		Status: http.StatusOK,
		Body: DeleteKeyOutputBody{
			Status: "DELETED",
			Key:    key,
			Value:  valueString(value),
		},
	}
	return res, nil
}

func (h *Handler) Rank(ctx context.Context, input *KeyInput) (*RankOutput, error) {
	key := int32(input.Key)

	r, err := h.index.Rank(key)
	if err != nil {
		return nil, huma.Error404NotFound("Key not found", err)
	}

	res := &RankOutput{
		Status: http.StatusOK,
		Body: RankOutputBody{
			Key:  key,
			Rank: r,
		},
	}
	return res, nil
}

func (h *Handler) FindRank(ctx context.Context, input *FindRankInput) (*EntryOutput, error) {
	entry, err := h.index.FindRank(input.Rank)
	if err != nil {
		return nil, huma.Error404NotFound("No key with this rank", err)
	}

	res := &EntryOutput{
		Status: http.StatusOK,
		Body:   entryBody(entry),
	}
	return res, nil
}

func (h *Handler) Keys(ctx context.Context, input *struct{}) (*KeysOutput, error) {
	res := &KeysOutput{
		Status: http.StatusOK,
		Body: KeysOutputBody{
			Keys: h.index.Keys(),
		},
	}
	return res, nil
}

func (h *Handler) Stats(ctx context.Context, input *struct{}) (*StatsOutput, error) {
	stats := h.index.Stats()

	res := &StatsOutput{
		Status: http.StatusOK,
		Body: StatsOutputBody{
			Size:      stats.Size,
			Height:    stats.Height,
			InsertRPS: stats.InsertRPS,
			DeleteRPS: stats.DeleteRPS,
			ReadRPS:   stats.ReadRPS,
		},
	}
	return res, nil
}
