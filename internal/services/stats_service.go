package services

import (
	"time"

	"github.com/ArtCreating/blogsite/internal/logger"
	"github.com/ArtCreating/blogsite/internal/models"

	"gorm.io/gorm"
)

// HotBlogsCacheKey 七天热门博客的缓存键
const HotBlogsCacheKey = "hot_blogs_in_seven_days"

const hotBlogsCacheTTL = 3600 * time.Second

// Cache 注入统计服务的进程级缓存
type Cache interface {
	Get(key string) interface{}
	Set(key string, data interface{}, ttl time.Duration)
}

// HotBlog 某篇博客在统计窗口内的阅读量
type HotBlog struct {
	ID      uint   `json:"id"`
	Title   string `json:"title"`
	ReadNum int    `json:"read_num"`
}

// StatsService 阅读量记录和聚合
type StatsService struct {
	db    *gorm.DB
	cache Cache
	now   func() time.Time

	// 测试时替换为桩
	loadHot func() []HotBlog
}

func NewStatsService(database *gorm.DB, cache Cache) *StatsService {
	s := &StatsService{
		db:    database,
		cache: cache,
		now:   time.Now,
	}
	s.loadHot = s.queryHotBlogsInSevenDays
	return s
}

// RecordRead 给今天的阅读量加一，没有当天记录时新建。
// 并发下两个请求同时新建会丢一次计数，量级上可以接受
func (s *StatsService) RecordRead(kind string, entityID uint) {
	today := s.today()
	res := s.db.Model(&models.ReadStat{}).
		Where("entity_kind = ? AND entity_id = ? AND date = ?", kind, entityID, today).
		UpdateColumn("read_num", gorm.Expr("read_num + 1"))
	if res.Error != nil {
		logger.Log.WithError(res.Error).Warn("更新阅读量失败")
		return
	}
	if res.RowsAffected == 0 {
		stat := models.ReadStat{
			EntityKind: kind,
			EntityID:   entityID,
			Date:       today,
			ReadNum:    1,
		}
		if err := s.db.Create(&stat).Error; err != nil {
			logger.Log.WithError(err).Warn("记录阅读量失败")
		}
	}
}

// HotBlogsInSevenDays 七天内阅读量最高的 7 篇博客，结果缓存 3600 秒。
// 缓存有效期内不感知新增阅读，缓存填充的并发竞争由后写者胜出
func (s *StatsService) HotBlogsInSevenDays() []HotBlog {
	if cached := s.cache.Get(HotBlogsCacheKey); cached != nil {
		if hot, ok := cached.([]HotBlog); ok {
			return hot
		}
	}

	hot := s.loadHot()
	s.cache.Set(HotBlogsCacheKey, hot, hotBlogsCacheTTL)
	return hot
}

// queryHotBlogsInSevenDays 统计窗口为 [今天-7, 今天)，不含今天
func (s *StatsService) queryHotBlogsInSevenDays() []HotBlog {
	start, end := sevenDayWindow(s.today())

	var hot []HotBlog
	err := s.db.Model(&models.Blog{}).
		Select("blogs.id, blogs.title, SUM(read_stats.read_num) AS read_num").
		Joins("JOIN read_stats ON read_stats.entity_kind = ? AND read_stats.entity_id = blogs.id", models.EntityBlog).
		Where("read_stats.date >= ? AND read_stats.date < ?", start, end).
		Group("blogs.id, blogs.title").
		Order("read_num DESC").
		Limit(7).
		Scan(&hot).Error
	if err != nil {
		logger.Log.WithError(err).Warn("统计七天热门博客失败")
	}
	return hot
}

// SevenDaysReadData 最近 7 天（含今天）每天的总阅读量，用于首页趋势图
func (s *StatsService) SevenDaysReadData(kind string) (dates []string, readNums []int) {
	today := s.today()
	for i := 6; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		var total int64
		s.db.Model(&models.ReadStat{}).
			Select("COALESCE(SUM(read_num), 0)").
			Where("entity_kind = ? AND date = ?", kind, day).
			Scan(&total)
		dates = append(dates, day.Format("01-02"))
		readNums = append(readNums, int(total))
	}
	return dates, readNums
}

// TodayHotData 今天阅读量最高的博客
func (s *StatsService) TodayHotData(kind string) []HotBlog {
	return s.hotDataOfDay(kind, s.today())
}

// YesterdayHotData 昨天阅读量最高的博客
func (s *StatsService) YesterdayHotData(kind string) []HotBlog {
	return s.hotDataOfDay(kind, s.today().AddDate(0, 0, -1))
}

func (s *StatsService) hotDataOfDay(kind string, day time.Time) []HotBlog {
	var hot []HotBlog
	s.db.Model(&models.ReadStat{}).
		Select("blogs.id, blogs.title, read_stats.read_num AS read_num").
		Joins("JOIN blogs ON blogs.id = read_stats.entity_id").
		Where("read_stats.entity_kind = ? AND read_stats.date = ?", kind, day).
		Order("read_stats.read_num DESC").
		Limit(7).
		Scan(&hot)
	return hot
}

func (s *StatsService) today() time.Time {
	n := s.now()
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, n.Location())
}

// sevenDayWindow 返回半开窗口 [today-7, today)
func sevenDayWindow(today time.Time) (start, end time.Time) {
	return today.AddDate(0, 0, -7), today
}
