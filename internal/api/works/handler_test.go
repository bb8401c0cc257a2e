package works

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"inkwell-app/internal/domain/pennames"
	"inkwell-app/internal/domain/works"
	"inkwell-app/internal/testdb"

	"github.com/gin-gonic/gin"
)

func listRequest(userID, target string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", target, nil)
	c.Set("user_id", userID)
	return c, w
}

func TestListWorksPublicationOrderPutsUnpublishedLast(t *testing.T) {
	db := testdb.Open(t)

	if err := db.Create(&pennames.PenName{ID: "pn1", UserID: "u1", Name: "Quill"}).Error; err != nil {
		t.Fatal(err)
	}

	teaser := time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)
	older := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	seed := []works.Work{
		{ID: "w-older", PenNameID: "pn1", TeaserDate: &teaser, PublicationDate: &older, LastEditedDate: time.Now()},
		{ID: "w-newer", PenNameID: "pn1", TeaserDate: &teaser, PublicationDate: &newer, LastEditedDate: time.Now()},
		{ID: "w-unpublished", PenNameID: "pn1", TeaserDate: &teaser, LastEditedDate: time.Now()},
	}
	for i := range seed {
		if err := db.Create(&seed[i]).Error; err != nil {
			t.Fatal(err)
		}
	}

	c, rec := listRequest("u1", "/works?ordered_by=publication")
	ListWorks(c)
	if rec.Code != 200 {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}

	var rows []struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &rows); err != nil {
		t.Fatal(err)
	}

	want := []string{"w-newer", "w-older", "w-unpublished"}
	if len(rows) != len(want) {
		t.Fatalf("rows = %d, want %d", len(rows), len(want))
	}
	for i, id := range want {
		if rows[i].ID != id {
			t.Errorf("row %d = %s, want %s", i, rows[i].ID, id)
		}
	}
}
