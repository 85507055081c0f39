package generation

import (
	"context"
	"log/slog"

	"github.com/membuddy/membuddy-api/internal/platform/logger"
)

// StaticGenerator returns the same sample study aids for every request.
// It stands in for a real content-generation backend: the input content is
// logged but otherwise ignored.
type StaticGenerator struct {
	logger *slog.Logger
}

// NewStaticGenerator creates a StaticGenerator.
func NewStaticGenerator(log *slog.Logger) *StaticGenerator {
	if log == nil {
		log = slog.Default()
	}
	return &StaticGenerator{
		logger: log.With(slog.String("component", "static_generator")),
	}
}

// Ensure StaticGenerator implements Generator interface
var _ Generator = (*StaticGenerator)(nil)

// GenerateAids implements Generator.GenerateAids with a fixed sample about
// the categories of machine learning.
func (g *StaticGenerator) GenerateAids(ctx context.Context, content string) (*MemoryAids, error) {
	log := logger.FromContextOrDefault(ctx, g.logger)
	log.Debug("generating memory aids", slog.Int("content_length", len(content)))

	return sampleAids(), nil
}

// sampleAids builds a fresh copy of the canned payload so callers can't
// mutate shared state.
func sampleAids() *MemoryAids {
	return &MemoryAids{
		MindMap: MindMapNode{
			ID:    "root",
			Label: "机器学习的分类",
			Children: []MindMapNode{
				{ID: "part1", Label: "监督学习", Children: []MindMapNode{
					{ID: "leaf1", Label: "分类"},
					{ID: "leaf2", Label: "回归"},
				}},
				{ID: "part2", Label: "非监督学习", Children: []MindMapNode{
					{ID: "leaf3", Label: "聚类"},
					{ID: "leaf4", Label: "降维"},
				}},
				{ID: "part3", Label: "半监督学习", Children: []MindMapNode{
					{ID: "leaf5", Label: "有少量标签数据"},
					{ID: "leaf6", Label: "大量无标签数据"},
				}},
				{ID: "part4", Label: "强化学习", Children: []MindMapNode{
					{ID: "leaf7", Label: "基于奖励"},
					{ID: "leaf8", Label: "智能体与环境交互"},
				}},
			},
		},
		Mnemonics: []Mnemonic{
			{
				ID:      "rhyme",
				Title:   "顺口溜记忆法",
				Content: "监督分类又回归，非监督里聚降维，半监督少量有标签，强化学习奖励追。",
				Type:    "rhyme",
			},
			{
				ID:          "acronym",
				Title:       "首字法",
				Content:     "监非半强",
				Type:        "acronym",
				Explanation: "利用监督、非监督、半监督、强化学习的首字母记忆",
			},
			{
				ID:      "story",
				Title:   "故事联想法",
				Content: "想象一个学生（机器学习），在老师（监督）的指导下学会了分类和回归。后来，学生离开了老师，自己摸索（非监督），学会了聚类和降维。有时，学生会得到一些提示（半监督），少量有标签的数据，大部分还是靠自己。最后，学生通过不断尝试和错误，根据奖励来调整自己的行为（强化学习）。",
				Type:    "story",
			},
		},
		SensoryAssociations: []SensoryAssociation{
			{
				ID:    "visual",
				Title: "视觉联想",
				Type:  "visual",
				Content: []AssociationItem{
					{Concept: "监督学习", Image: "🌟", Color: "#fbbf24", Association: "老师批改作业，有明确的对错"},
					{Concept: "非监督学习", Image: "🔵", Color: "#06b6d4", Association: "自己整理房间，没有固定的标准"},
				},
			},
			{
				ID:    "auditory",
				Title: "听觉联想",
				Type:  "auditory",
				Content: []AssociationItem{
					{Concept: "半监督学习", Sound: "提示音", Rhythm: "断断续续"},
					{Concept: "强化学习", Sound: "游戏音效", Rhythm: "紧张刺激"},
				},
			},
			{
				ID:    "tactile",
				Title: "触觉联想",
				Type:  "tactile",
				Content: []AssociationItem{
					{Concept: "分类", Texture: "分拣箱", Feeling: "整理"},
					{Concept: "回归", Texture: "平滑的曲线", Feeling: "流畅"},
				},
			},
		},
	}
}
