package collections

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"inkwell-app/internal/domain/collections"
	"inkwell-app/internal/domain/pennames"
	"inkwell-app/internal/domain/works"
	"inkwell-app/internal/testdb"

	"github.com/gin-gonic/gin"
)

func addWorkRequest(userID, collectionID, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest("POST", "/collections/"+collectionID+"/works", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: collectionID}}
	c.Set("user_id", userID)
	return c, w
}

func TestAddWorkTwiceLeavesOneMembership(t *testing.T) {
	db := testdb.Open(t)

	now := time.Now()
	if err := db.Create(&pennames.PenName{ID: "pn1", UserID: "u1", Name: "Quill"}).Error; err != nil {
		t.Fatal(err)
	}
	if err := db.Create(&works.Work{ID: "w1", PenNameID: "pn1", TeaserDate: &now, LastEditedDate: now}).Error; err != nil {
		t.Fatal(err)
	}
	if err := db.Create(&collections.Collection{ID: "col1", UserID: "u1", Title: "Favourites"}).Error; err != nil {
		t.Fatal(err)
	}

	body := `{"work_id":"w1","pen_name_id":"pn1"}`
	for i := 1; i <= 2; i++ {
		c, rec := addWorkRequest("u1", "col1", body)
		AddWorkToCollection(c)
		if rec.Code != 200 {
			t.Fatalf("call %d: status = %d, body %s", i, rec.Code, rec.Body)
		}
	}

	var n int64
	if err := db.Model(&collections.CollectionWork{}).Count(&n).Error; err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("membership rows = %d, want 1", n)
	}
}
