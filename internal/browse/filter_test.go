package browse

import (
	"strings"
	"testing"

	"wasteloop-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listing(title, description, category, location, status string) models.WasteListing {
	return models.WasteListing{
		Title:       title,
		Description: description,
		Category:    category,
		Location:    location,
		Status:      status,
	}
}

func titles(ls []models.WasteListing) []string {
	out := make([]string, len(ls))
	for i, l := range ls {
		out[i] = l.Title
	}
	return out
}

func TestFilter_CategoryExactMatchPreservesOrder(t *testing.T) {
	in := []models.WasteListing{
		listing("Plastic A", "", models.CategoryPlastic, "", models.StatusAvailable),
		listing("Metal B", "", models.CategoryMetal, "", models.StatusAvailable),
		listing("Plastic C", "", models.CategoryPlastic, "", models.StatusAvailable),
	}

	got := Filter(in, models.CategoryPlastic, "")
	assert.Equal(t, []string{"Plastic A", "Plastic C"}, titles(got))
}

func TestFilter_AllSentinelIsNoOp(t *testing.T) {
	in := []models.WasteListing{
		listing("A", "", models.CategoryPlastic, "", models.StatusAvailable),
		listing("B", "", models.CategoryMetal, "", models.StatusAvailable),
	}

	assert.Equal(t, titles(in), titles(Filter(in, CategoryAll, "")))
	assert.Equal(t, titles(in), titles(Filter(in, "", "")))
}

func TestFilter_SearchMatchesTitleDescriptionOrLocation(t *testing.T) {
	in := []models.WasteListing{
		listing("HDPE Scrap", "", models.CategoryPlastic, "", models.StatusAvailable),
		listing("Copper wire", "clean hdpe-wrapped coils", models.CategoryMetal, "", models.StatusAvailable),
		listing("Glass cullet", "", models.CategoryGlass, "Hdpeville", models.StatusAvailable),
		listing("Cardboard", "mixed paper", models.CategoryPaper, "Lisbon", models.StatusAvailable),
	}

	got := Filter(in, CategoryAll, "HDPE")
	assert.Equal(t, []string{"HDPE Scrap", "Copper wire", "Glass cullet"}, titles(got))

	// Every retained listing matches in at least one field, case-insensitively.
	for _, l := range got {
		matches := strings.Contains(strings.ToLower(l.Title), "hdpe") ||
			strings.Contains(strings.ToLower(l.Description), "hdpe") ||
			strings.Contains(strings.ToLower(l.Location), "hdpe")
		assert.True(t, matches, l.Title)
	}
}

func TestFilter_IsSubsetRestriction(t *testing.T) {
	in := []models.WasteListing{
		listing("A", "x", models.CategoryPlastic, "here", models.StatusAvailable),
		listing("B", "", models.CategoryMetal, "", models.StatusAvailable),
		listing("C", "y", models.CategoryOther, "there", models.StatusAvailable),
	}

	got := Filter(in, CategoryAll, "zzz-not-present")
	assert.Empty(t, got)

	got = Filter(in, CategoryAll, "")
	assert.Len(t, got, len(in))
}

func TestFilter_EmptyOptionalFieldsNeverMatchNeverError(t *testing.T) {
	in := []models.WasteListing{
		listing("Bare", "", models.CategoryOther, "", models.StatusAvailable),
	}

	assert.Empty(t, Filter(in, CategoryAll, "anything"))
}

func TestFilter_Idempotent(t *testing.T) {
	in := []models.WasteListing{
		listing("Plastic pellets", "regrind", models.CategoryPlastic, "Porto", models.StatusAvailable),
		listing("Steel offcuts", "", models.CategoryMetal, "Porto", models.StatusAvailable),
		listing("Sawdust", "dry", models.CategoryOrganic, "Braga", models.StatusAvailable),
	}

	once := Filter(in, CategoryAll, "porto")
	twice := Filter(once, CategoryAll, "porto")
	assert.Equal(t, once, twice)
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	in := []models.WasteListing{
		listing("A", "", models.CategoryPlastic, "", models.StatusAvailable),
		listing("B", "", models.CategoryMetal, "", models.StatusAvailable),
	}
	before := titles(in)

	_ = Filter(in, models.CategoryMetal, "b")
	assert.Equal(t, before, titles(in))
}

func TestFilter_UpstreamStatusRestrictionThenCategory(t *testing.T) {
	// The caller restricts to status=available before filtering; the engine
	// itself never looks at status.
	all := []models.WasteListing{
		listing("P1", "", models.CategoryPlastic, "", models.StatusAvailable),
		listing("M1", "", models.CategoryMetal, "", models.StatusAvailable),
		listing("P2", "", models.CategoryPlastic, "", models.StatusMatched),
	}
	available := make([]models.WasteListing, 0, len(all))
	for _, l := range all {
		if l.Status == models.StatusAvailable {
			available = append(available, l)
		}
	}

	got := Filter(available, models.CategoryPlastic, "")
	require.Len(t, got, 1)
	assert.Equal(t, "P1", got[0].Title)
}
