package controllers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	nicknameKey = "nickname"
	categoryKey = "category"
)

// Preferences pre-fill the create/join forms of a returning browser
type Preferences struct {
	Nickname string `json:"nickname" binding:"max=24"`
	Category string `json:"category" binding:"max=40"`
}

// @Summary Get saved preferences
// @Description Nickname and category remembered in the session cookie
// @Tags preferences
// @Produce json
// @Success 200 {object} Preferences
// @Router /preferences [get]
func GetPreferences(c *gin.Context) {
	session := sessions.Default(c)
	prefs := Preferences{}
	if v, ok := session.Get(nicknameKey).(string); ok {
		prefs.Nickname = v
	}
	if v, ok := session.Get(categoryKey).(string); ok {
		prefs.Category = v
	}
	c.JSON(http.StatusOK, prefs)
}

// @Summary Save preferences
// @Description Remembers nickname and category in the session cookie. Empty fields are cleared.
// @Tags preferences
// @Accept json
// @Produce json
// @Param preferences body Preferences true "Preferences"
// @Success 200 {object} Preferences
// @Failure 400 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /preferences [put]
func UpdatePreferences(c *gin.Context) {
	var prefs Preferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid preferences: " + err.Error()})
		return
	}
	prefs.Nickname = strings.TrimSpace(prefs.Nickname)
	prefs.Category = strings.TrimSpace(prefs.Category)

	session := sessions.Default(c)
	for key, value := range map[string]string{nicknameKey: prefs.Nickname, categoryKey: prefs.Category} {
		if value == "" {
			session.Delete(key)
		} else {
			session.Set(key, value)
		}
	}
	if err := session.Save(); err != nil {
		log.Printf("[PREFERENCES-ERROR] Error saving session: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving preferences"})
		return
	}
	c.JSON(http.StatusOK, prefs)
}
