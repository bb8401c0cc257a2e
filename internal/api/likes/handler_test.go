package likes

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"inkwell-app/internal/domain/engagement"
	"inkwell-app/internal/domain/works"
	"inkwell-app/internal/testdb"

	"github.com/gin-gonic/gin"
)

func likeRequest(userID, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest("POST", "/likes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Set("user_id", userID)
	return c, w
}

func TestLikeTwiceLeavesOneRow(t *testing.T) {
	db := testdb.Open(t)

	now := time.Now()
	if err := db.Create(&works.Work{ID: "w1", PenNameID: "pn1", TeaserDate: &now, LastEditedDate: now}).Error; err != nil {
		t.Fatal(err)
	}

	for i := 1; i <= 2; i++ {
		c, rec := likeRequest("u1", `{"work_id":"w1"}`)
		CreateLike(c)
		if rec.Code != 200 {
			t.Fatalf("call %d: status = %d, body %s", i, rec.Code, rec.Body)
		}
	}

	var n int64
	if err := db.Model(&engagement.Like{}).Count(&n).Error; err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("like rows = %d, want 1", n)
	}
}

func TestLikeUnknownWorkIsNotFound(t *testing.T) {
	testdb.Open(t)

	c, rec := likeRequest("u1", `{"work_id":"ghost"}`)
	CreateLike(c)
	if rec.Code != 404 {
		t.Errorf("status = %d, want 404; body %s", rec.Code, rec.Body)
	}
}
