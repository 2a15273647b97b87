package components

// VisibilityComponent 控制实体是否参与绘制
// 没有此组件的实体视为可见
type VisibilityComponent struct {
	Visible bool
}
