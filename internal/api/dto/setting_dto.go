package dto

// SettingDTO 运行时配置项，key 为空由 handler 返回字段错误
type SettingDTO struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}
