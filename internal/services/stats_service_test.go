package services

import (
	"testing"
	"time"

	"github.com/ArtCreating/blogsite/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSevenDayWindow(t *testing.T) {
	today := time.Date(2024, 5, 10, 0, 0, 0, 0, time.Local)
	start, end := sevenDayWindow(today)

	// 半开窗口 [今天-7, 今天)，今天不在统计范围内
	assert.Equal(t, time.Date(2024, 5, 3, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, today, end)
}

func TestHotBlogsCached(t *testing.T) {
	s := NewStatsService(nil, utils.NewCache(10))

	calls := 0
	s.loadHot = func() []HotBlog {
		calls++
		return []HotBlog{{ID: 1, Title: "第一篇", ReadNum: 42}}
	}

	first := s.HotBlogsInSevenDays()
	second := s.HotBlogsInSevenDays()

	// TTL 内第二次调用直接命中缓存，返回同一份结果
	require.Equal(t, first, second)
	assert.Equal(t, 1, calls)
	assert.NotNil(t, s.cache.Get(HotBlogsCacheKey))
}

func TestHotBlogsRecomputeAfterExpiry(t *testing.T) {
	cache := utils.NewCache(10)
	s := NewStatsService(nil, cache)

	calls := 0
	s.loadHot = func() []HotBlog {
		calls++
		return []HotBlog{{ID: 1, Title: "第一篇", ReadNum: calls}}
	}

	s.HotBlogsInSevenDays()
	// 模拟 TTL 过期：放一个已过期的缓存项
	cache.Set(HotBlogsCacheKey, []HotBlog{{ID: 1, Title: "第一篇", ReadNum: 1}}, -time.Second)

	refreshed := s.HotBlogsInSevenDays()
	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, refreshed[0].ReadNum)
}

func TestStatsServiceToday(t *testing.T) {
	s := NewStatsService(nil, utils.NewCache(10))
	s.now = func() time.Time {
		return time.Date(2024, 5, 10, 23, 59, 58, 0, time.Local)
	}

	assert.Equal(t, time.Date(2024, 5, 10, 0, 0, 0, 0, time.Local), s.today())
}
