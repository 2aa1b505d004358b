package dao

import (
	"github.com/ego-component/egorm"
	"gorm.io/gorm/clause"
)

func InitTables(db *egorm.Component) error {
	err := db.AutoMigrate(
		&LLMRecord{},
		&BizConfig{},
	)
	if err != nil {
		return err
	}
	return seedConfigs(db)
}

// seedConfigs 给三个业务写入默认配置，已存在就跳过，
// 运营调整过的配置不会被覆盖。
func seedConfigs(db *egorm.Component) error {
	// 判词业务的 prompt 由上层拼好整体传入，所以模板统一是 %s
	defaults := []BizConfig{
		{
			Biz:            "court_scoring",
			Model:          "glm-4-flash",
			Temperature:    0.3,
			MaxInput:       4096,
			MaxTokens:      8000,
			Timeout:        30000,
			PromptTemplate: "%s",
		},
		{
			Biz:            "court_verdict",
			Model:          "glm-4-flash",
			Temperature:    0.8,
			MaxInput:       4096,
			MaxTokens:      8000,
			Timeout:        30000,
			PromptTemplate: "%s",
		},
		{
			Biz:            "court_love_index",
			Model:          "glm-4-flash",
			Temperature:    0.4,
			MaxInput:       4096,
			MaxTokens:      2000,
			Timeout:        30000,
			PromptTemplate: "%s",
		},
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "biz"}},
		DoNothing: true,
	}).Create(&defaults).Error
}
