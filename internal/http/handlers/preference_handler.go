// Language preference endpoints.
//
// The preference lives entirely client-side in a cookie; no server-side
// record exists. Reading never fails: absence or corruption of the stored
// value silently falls back to English.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agrilink/agrifinance-backend/internal/domain"
)

const (
	// languageCookie is the client-held preference slot.
	languageCookie = "language"
	// languageCookieMaxAge is 30 days in seconds.
	languageCookieMaxAge = 30 * 24 * 60 * 60
)

// SetLanguageRequest is the payload for setting the language preference.
type SetLanguageRequest struct {
	// Language must be "english" or "chichewa".
	Language string `form:"language" json:"language" example:"chichewa"`
}

// LanguageResponse reports the effective language preference.
type LanguageResponse struct {
	Language string `json:"language" example:"english"`
}

// SetLanguage godoc
// @ID          setLanguage
// @Summary     Set the language preference
// @Description Stores the preference in a site-wide cookie valid for 30 days.
// @Tags        Preferences
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.SetLanguageRequest  true  "Language payload"
//
// @Success     204  {string} string "No Content"
// @Failure     400  {object} handlers.ErrorResponse "Unsupported language"
// @Router      /preferences/language [put]
func (h *Handlers) SetLanguage(c *gin.Context) {
	var req SetLanguageRequest
	_ = c.ShouldBind(&req)

	lang := domain.Language(req.Language)
	if !lang.Valid() {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "language must be english or chichewa")
		return
	}

	c.SetCookie(languageCookie, lang.String(), languageCookieMaxAge, "/", "", false, false)
	noContent(c)
}

// GetLanguage godoc
// @ID          getLanguage
// @Summary     Read the language preference
// @Description Returns "chichewa" only on an exact cookie match; any other or missing value reads as "english".
// @Tags        Preferences
// @Produce     json
//
// @Success     200  {object} handlers.LanguageResponse
// @Router      /preferences/language [get]
func (h *Handlers) GetLanguage(c *gin.Context) {
	v, _ := c.Cookie(languageCookie)
	ok(c, http.StatusOK, LanguageResponse{Language: domain.ParseLanguage(v).String()})
}
