package notify

import (
	"fmt"
	"testing"

	"marketplace-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushNewestFirst(t *testing.T) {
	sink := NewMemorySink()

	sink.Push("primeiro", models.SeverityInfo)
	sink.Push("segundo", models.SeveritySuccess)

	all := sink.All()
	require.Len(t, all, 2)
	assert.Equal(t, "segundo", all[0].Message)
	assert.Equal(t, "Sucesso", all[0].Title)
	assert.Equal(t, "primeiro", all[1].Message)
	assert.Equal(t, "Informação", all[1].Title)
}

func TestUnreadAndMarkAllRead(t *testing.T) {
	sink := NewMemorySink()

	sink.Push("a", models.SeverityWarning)
	sink.Push("b", models.SeverityError)
	assert.Equal(t, 2, sink.UnreadCount())

	sink.MarkAllRead()
	assert.Zero(t, sink.UnreadCount())

	sink.Push("c", models.SeverityInfo)
	assert.Equal(t, 1, sink.UnreadCount())
}

func TestHistoryLimit(t *testing.T) {
	sink := NewMemorySink()

	for i := 0; i < defaultHistoryLimit+10; i++ {
		sink.Push(fmt.Sprintf("mensagem %d", i), models.SeverityInfo)
	}

	all := sink.All()
	assert.Len(t, all, defaultHistoryLimit)
	// The most recent survives trimming.
	assert.Equal(t, fmt.Sprintf("mensagem %d", defaultHistoryLimit+9), all[0].Message)
}

func TestTitleFor(t *testing.T) {
	assert.Equal(t, "Sucesso", models.TitleFor(models.SeveritySuccess))
	assert.Equal(t, "Atenção", models.TitleFor(models.SeverityWarning))
	assert.Equal(t, "Erro", models.TitleFor(models.SeverityError))
	assert.Equal(t, "Informação", models.TitleFor(models.SeverityInfo))
	assert.Equal(t, "Informação", models.TitleFor("outro"))
}
