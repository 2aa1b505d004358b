package service

import "regexp"

// 大模型经常把 JSON 包在 ```json ... ``` 里，也可能直接裸着返回。
// 贪婪匹配最外层大括号，两种情况都能取出来。
const jsonExpr = `\{[\s\S]*\}`

var jsonRegexp = regexp.MustCompile(jsonExpr)

func extractJSON(answer string) string {
	return jsonRegexp.FindString(answer)
}
