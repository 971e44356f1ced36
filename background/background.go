package background

import (
	"context"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/spf13/viper"

	"github.com/fruitshare/fruitshare-api/external/pushcenter"
	"github.com/fruitshare/fruitshare-api/utils"
)

// supported notification languages
var notificationLanguages = []string{"en", "es"}

// notifyUser localizes a notification for every supported language and
// sends it to a single user through the push gateway.
func (m *BackgroundManager) notifyUser(userID, messageID string, templateData map[string]interface{}, data map[string]interface{}) error {
	headings := map[string]string{}
	contents := map[string]string{}

	for _, lang := range notificationLanguages {
		loc := utils.NewLocalizer(lang)

		title, err := loc.Localize(&i18n.LocalizeConfig{
			MessageID:    messageID + ".title",
			TemplateData: templateData,
		})
		if err != nil {
			return err
		}

		body, err := loc.Localize(&i18n.LocalizeConfig{
			MessageID:    messageID + ".body",
			TemplateData: templateData,
		})
		if err != nil {
			return err
		}

		headings[lang] = title
		contents[lang] = body
	}

	req := &pushcenter.NotificationRequest{
		AppID:    viper.GetString("pushcenter.appid"),
		Headings: headings,
		Contents: contents,
		Filters:  pushcenter.UserFilter(userID),
		Data:     data,
	}

	return m.push.SendNotification(context.Background(), req)
}
