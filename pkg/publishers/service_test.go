package publishers

import (
	"context"
	"testing"

	"github.com/pathsala/pathsala/pkg/errcodes"
	"github.com/pathsala/pathsala/pkg/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublisherLifecycle(t *testing.T) {
	t.Parallel()

	db := testutils.NewDB(t)
	svc := NewService(db)
	ctx := context.Background()

	country := "Bangladesh"
	publisher, err := svc.CreatePublisher(ctx, CreatePublisherOptions{
		Name:    "Ananda Publishers",
		Country: &country,
	})
	require.NoError(t, err)
	require.NotNil(t, publisher.Country)
	assert.Equal(t, "Bangladesh", *publisher.Country)

	_, err = svc.CreatePublisher(ctx, CreatePublisherOptions{Name: "ananda publishers"})
	assert.ErrorIs(t, err, errcodes.DuplicateResource("Publisher"))

	// Updating only the country keeps the name.
	updatedCountry := "India"
	updated, err := svc.UpdatePublisher(ctx, publisher.ID, UpdatePublisherOptions{Country: &updatedCountry})
	require.NoError(t, err)
	assert.Equal(t, "Ananda Publishers", updated.Name)
	require.NotNil(t, updated.Country)
	assert.Equal(t, "India", *updated.Country)

	require.NoError(t, svc.DeletePublisher(ctx, publisher.ID))
	_, err = svc.RetrievePublisher(ctx, publisher.ID)
	assert.ErrorIs(t, err, errcodes.NotFound("Publisher"))
}
