package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"kankou/internal/models/dataset_models"
	"kankou/pkg/utils"
)

func manySpots(n int) []dataset_models.SpotRecord {
	out := make([]dataset_models.SpotRecord, 0, n)
	for i := 1; i <= n; i++ {
		tags := "自然"
		if i%2 == 0 {
			tags = "グルメ"
		}
		out = append(out, spot(fmt.Sprintf("スポット%02d", i), withTags(tags)))
	}
	return out
}

func TestSpotServiceListSpots(t *testing.T) {
	svc := NewSpotService(&fakeSpotRepo{spots: manySpots(45)}, zap.NewNop())

	page, err := svc.ListSpots(context.Background(), "", 3, 20)
	require.NoError(t, err)
	assert.Equal(t, 45, page.Total)
	assert.Equal(t, 3, page.TotalPages)
	assert.Len(t, page.Items, 5)
	assert.Equal(t, "スポット41", page.Items[0].Name)
	assert.True(t, page.HasPrev)
	assert.False(t, page.HasNext)
}

func TestSpotServiceListSpotsFiltered(t *testing.T) {
	svc := NewSpotService(&fakeSpotRepo{spots: manySpots(45)}, zap.NewNop())

	page, err := svc.ListSpots(context.Background(), "グルメ", 0, 20)
	require.NoError(t, err)
	assert.Equal(t, 22, page.Total)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, "グルメ", page.Items[0].Tags)
	assert.False(t, page.HasPrev)
	assert.True(t, page.HasNext)
}

func TestSpotServiceListSpotsErrors(t *testing.T) {
	svc := NewSpotService(&fakeSpotRepo{err: utils.ErrDataLoad}, zap.NewNop())

	_, err := svc.ListSpots(context.Background(), "", 1, 20)
	assert.ErrorIs(t, err, utils.ErrDataLoad)

	_, err = svc.ListSpots(context.Background(), "", 1, 0)
	assert.ErrorIs(t, err, utils.ErrInvalidPageSize)
}

func TestSpotServiceGetSpotDetail(t *testing.T) {
	svc := NewSpotService(&fakeSpotRepo{spots: []dataset_models.SpotRecord{
		spot("後楽園", withCoords("34.6675,133.9356")),
	}}, zap.NewNop())

	d, err := svc.GetSpotDetail(context.Background(), "後楽園")
	require.NoError(t, err)
	assert.NotEmpty(t, d.MapEmbedURL)

	_, err = svc.GetSpotDetail(context.Background(), "岡山城")
	assert.ErrorIs(t, err, utils.ErrSpotNotFound)
}
