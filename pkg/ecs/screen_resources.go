package ecs

// ScreenResources 屏幕资源句柄
//
// 屏幕进入时通过 Spawn 创建显示元素，退出时调用一次 Release 统一销毁，
// 不依赖标记组件查询。一个 EntityManager 可以被多个 ScreenResources 共享。
type ScreenResources struct {
	entityManager *EntityManager
	owned         []EntityID
	released      bool
}

// NewScreenResources 创建屏幕资源句柄
func NewScreenResources(em *EntityManager) *ScreenResources {
	return &ScreenResources{
		entityManager: em,
		owned:         make([]EntityID, 0, 4),
	}
}

// Spawn 创建一个属于当前屏幕的实体，并添加给定组件
func (r *ScreenResources) Spawn(components ...interface{}) EntityID {
	id := r.entityManager.CreateEntity()
	for _, comp := range components {
		r.entityManager.AddComponent(id, comp)
	}
	r.owned = append(r.owned, id)
	return id
}

// Owned 返回当前屏幕拥有的实体ID
func (r *ScreenResources) Owned() []EntityID {
	owned := make([]EntityID, len(r.owned))
	copy(owned, r.owned)
	return owned
}

// Released 是否已释放
func (r *ScreenResources) Released() bool {
	return r.released
}

// Release 销毁当前屏幕拥有的全部实体，可重复调用
func (r *ScreenResources) Release() {
	if r.released {
		return
	}
	for _, id := range r.owned {
		r.entityManager.DestroyEntity(id)
	}
	r.entityManager.RemoveMarkedEntities()
	r.owned = r.owned[:0]
	r.released = true
}
