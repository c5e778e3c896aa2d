package dto

// ==================== 统一响应 ====================

// Result 统一响应体：success 标记 + 失败信息 + 数据
type Result struct {
	Success  bool        `json:"success"`
	ErrorMsg string      `json:"errorMsg,omitempty"`
	Data     interface{} `json:"data,omitempty"`
	Total    int64       `json:"total,omitempty"`
}

// Ok 成功，无数据
func Ok() Result {
	return Result{Success: true}
}

// OkWithData 成功，携带数据
func OkWithData(data interface{}) Result {
	return Result{Success: true, Data: data}
}

// OkWithList 成功，携带列表和总数
func OkWithList(data interface{}, total int64) Result {
	return Result{Success: true, Data: data, Total: total}
}

// Fail 失败，携带提示信息
func Fail(msg string) Result {
	return Result{Success: false, ErrorMsg: msg}
}
