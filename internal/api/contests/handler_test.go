package contests

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"inkwell-app/internal/domain/contests"
	"inkwell-app/internal/domain/pennames"
	"inkwell-app/internal/domain/works"
	"inkwell-app/internal/testdb"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func contestRequest(userID, method, contestID, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, "/contests/"+contestID, reader)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: contestID}}
	c.Set("user_id", userID)
	return c, w
}

func seedOpenContest(t *testing.T, db *gorm.DB) {
	t.Helper()
	past := time.Now().Add(-time.Hour)
	ct := contests.Contest{
		ID:                  "ct1",
		CreatorUserID:       "judge",
		Name:                "spring-sonnets",
		Title:               "Spring Sonnets",
		SubmissionStartDate: &past,
		LastEditedDate:      time.Now(),
	}
	if err := db.Create(&ct).Error; err != nil {
		t.Fatal(err)
	}
}

func TestSubmitWorkTwiceLeavesOneSubmission(t *testing.T) {
	db := testdb.Open(t)
	seedOpenContest(t, db)

	now := time.Now()
	if err := db.Create(&pennames.PenName{ID: "pn1", UserID: "u1", Name: "Quill"}).Error; err != nil {
		t.Fatal(err)
	}
	if err := db.Create(&works.Work{ID: "w1", PenNameID: "pn1", TeaserDate: &now, LastEditedDate: now}).Error; err != nil {
		t.Fatal(err)
	}

	for i := 1; i <= 2; i++ {
		c, rec := contestRequest("u1", "POST", "ct1", `{"work_id":"w1"}`)
		SubmitWork(c)
		if rec.Code != 200 {
			t.Fatalf("call %d: status = %d, body %s", i, rec.Code, rec.Body)
		}
	}

	var n int64
	if err := db.Model(&contests.ContestSubmission{}).Count(&n).Error; err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("submission rows = %d, want 1", n)
	}
}

func TestPublicizeSweepIsMonotonic(t *testing.T) {
	db := testdb.Open(t)
	seedOpenContest(t, db)

	if err := db.Create(&pennames.PenName{ID: "pn1", UserID: "u1", Name: "Quill"}).Error; err != nil {
		t.Fatal(err)
	}

	teaserDate := time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC)
	pubDate := time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC)
	seed := []works.Work{
		{ID: "w-hidden", PenNameID: "pn1", LastEditedDate: time.Now()},
		{ID: "w-teased", PenNameID: "pn1", TeaserDate: &teaserDate, LastEditedDate: time.Now()},
		{ID: "w-published", PenNameID: "pn1", TeaserDate: &teaserDate, PublicationDate: &pubDate, LastEditedDate: time.Now()},
	}
	for i := range seed {
		if err := db.Create(&seed[i]).Error; err != nil {
			t.Fatal(err)
		}
		sub := contests.ContestSubmission{ContestID: "ct1", WorkID: seed[i].ID}
		if err := db.Create(&sub).Error; err != nil {
			t.Fatal(err)
		}
	}

	c, rec := contestRequest("judge", "POST", "ct1", "")
	PublicizeSubmissions(c)
	if rec.Code != 200 {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}

	var counts struct {
		Teased    int64 `json:"teased"`
		Published int64 `json:"published"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &counts); err != nil {
		t.Fatal(err)
	}
	// Only the hidden work was missing a teaser; the hidden and teased
	// works were missing publication dates.
	if counts.Teased != 1 || counts.Published != 2 {
		t.Errorf("teased = %d published = %d, want 1 and 2", counts.Teased, counts.Published)
	}

	var hidden, teased, published works.Work
	for id, dst := range map[string]*works.Work{
		"w-hidden": &hidden, "w-teased": &teased, "w-published": &published,
	} {
		if err := db.First(dst, "id = ?", id).Error; err != nil {
			t.Fatal(err)
		}
	}

	if hidden.TeaserDate == nil || hidden.PublicationDate == nil {
		t.Error("hidden work was not promoted to published")
	}
	if teased.PublicationDate == nil {
		t.Error("teased work did not gain a publication date")
	}
	if teased.TeaserDate == nil || teased.TeaserDate.Year() != 2021 {
		t.Error("sweep moved an already-set teaser date")
	}
	if published.PublicationDate == nil || published.PublicationDate.Year() != 2020 {
		t.Error("sweep moved an already-set publication date")
	}
}
