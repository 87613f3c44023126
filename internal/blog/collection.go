package blog

type PostList []Post
type Tags []Tag
type Comments []Comment

func (tt Tags) IndexByID() map[int]Tag {
	index := make(map[int]Tag, len(tt))
	for i := range tt {
		index[tt[i].ID] = tt[i]
	}
	return index
}

// UniqueTagIDs collects the distinct tag ids referenced by the list,
// preserving first-seen order.
func (ll PostList) UniqueTagIDs() []int {
	seen := make(map[int]struct{})
	var ids []int
	for i := range ll {
		for _, tagID := range ll[i].TagIDs {
			if _, ok := seen[tagID]; ok {
				continue
			}
			seen[tagID] = struct{}{}
			ids = append(ids, tagID)
		}
	}
	return ids
}

func (ll PostList) SetTags(tags Tags) {
	tagIndex := tags.IndexByID()
	for i := range ll {
		ll[i].Tags = make([]Tag, 0, len(ll[i].TagIDs))
		for _, tagID := range ll[i].TagIDs {
			if tag, ok := tagIndex[tagID]; ok {
				ll[i].Tags = append(ll[i].Tags, tag)
			}
		}
	}
}
