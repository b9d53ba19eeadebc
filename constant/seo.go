package constant

// TopicSimilarityThreshold 相关话题聚类的相似度阈值，两个话题相似度需严格大于该值才会合并。
const TopicSimilarityThreshold = 0.7
