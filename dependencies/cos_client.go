package dependencies

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/tencentyun/cos-go-sdk-v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/Xushengqwer/trade_site/config"
)

// ObjectStorage 发布静态文件（sitemap.xml、rss.xml）所需的对象存储能力
type ObjectStorage interface {
	// PutObject 上传对象并返回其公开访问 URL
	PutObject(ctx context.Context, objectKey string, body []byte, contentType string) (string, error)
	// DeleteObject 删除对象
	DeleteObject(ctx context.Context, objectKey string) error
}

type cosStorage struct {
	client     *cos.Client
	publicBase *url.URL // 拼接对象公开访问 URL 的基础部分
	logger     *zap.Logger
}

// InitCOS 初始化腾讯云 COS 客户端；请求经过 otelhttp 以便在链路中看到上传耗时。
func InitCOS(cfg *config.COSConfig, logger *zap.Logger) (ObjectStorage, error) {
	if cfg == nil || !cfg.Enabled() {
		return nil, fmt.Errorf("COS 配置不完整，缺少关键字段 (SecretID, SecretKey, BucketName, AppID, Region)")
	}

	bucketURLStr := fmt.Sprintf("https://%s-%s.cos.%s.myqcloud.com", cfg.BucketName, cfg.AppID, cfg.Region)
	bucketURL, err := url.Parse(bucketURLStr)
	if err != nil {
		return nil, fmt.Errorf("解析 COS 存储桶 URL '%s' 失败: %w", bucketURLStr, err)
	}

	publicBase := bucketURL
	if cfg.BaseURL != "" {
		pu, err := url.Parse(cfg.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("解析 COS 公共访问 BaseURL '%s' 失败: %w", cfg.BaseURL, err)
		}
		publicBase = pu
	}

	client := cos.NewClient(&cos.BaseURL{BucketURL: bucketURL}, &http.Client{
		Transport: &cos.AuthorizationTransport{
			SecretID:  cfg.SecretID,
			SecretKey: cfg.SecretKey,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	})

	logger.Info("COS 客户端初始化成功",
		zap.String("存储桶名称", cfg.BucketName),
		zap.String("地域", cfg.Region),
		zap.String("公共访问基础URL", publicBase.String()),
	)
	return &cosStorage{client: client, publicBase: publicBase, logger: logger}, nil
}

// PublicURL 构建对象的完整公共访问 URL
func (c *cosStorage) PublicURL(objectKey string) string {
	return joinObjectURL(c.publicBase, objectKey)
}

func joinObjectURL(base *url.URL, objectKey string) string {
	basePath := base.Path
	if !strings.HasSuffix(basePath, "/") {
		basePath += "/"
	}
	u := *base
	u.Path = basePath + strings.TrimPrefix(objectKey, "/")
	return u.String()
}

func (c *cosStorage) PutObject(ctx context.Context, objectKey string, body []byte, contentType string) (string, error) {
	opts := &cos.ObjectPutOptions{
		ObjectPutHeaderOptions: &cos.ObjectPutHeaderOptions{
			ContentType:   contentType,
			ContentLength: int64(len(body)),
			CacheControl:  "public, max-age=3600",
		},
	}
	resp, err := c.client.Object.Put(ctx, objectKey, bytes.NewReader(body), opts)
	if err != nil {
		c.logger.Error("COS 上传 API 调用失败", zap.String("对象键", objectKey), zap.Error(err))
		return "", fmt.Errorf("上传对象 '%s' 到 COS 失败: %w", objectKey, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(resp.Body)
		c.logger.Error("COS 上传返回非200状态码", zap.String("对象键", objectKey), zap.Int("状态码", resp.StatusCode))
		return "", fmt.Errorf("COS 上传失败，状态码: %d, 响应: %s", resp.StatusCode, string(msg))
	}

	publicURL := c.PublicURL(objectKey)
	c.logger.Info("COS 上传成功", zap.String("对象键", objectKey), zap.String("公开访问URL", publicURL))
	return publicURL, nil
}

func (c *cosStorage) DeleteObject(ctx context.Context, objectKey string) error {
	resp, err := c.client.Object.Delete(ctx, objectKey)
	if err != nil {
		c.logger.Error("COS 删除 API 调用失败", zap.String("对象键", objectKey), zap.Error(err))
		return fmt.Errorf("从 COS 删除对象 '%s' 失败: %w", objectKey, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("COS 删除失败，状态码: %d, 响应: %s", resp.StatusCode, string(msg))
	}
	c.logger.Info("COS 对象删除成功", zap.String("对象键", objectKey))
	return nil
}
