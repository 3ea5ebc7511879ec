package handler

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
	"golang.org/x/image/webp"
)

const thumbnailWidth = 320

// UploadImage 处理图片上传请求
// 对 JPEG/PNG 额外生成缩略图，WebP 仅探测尺寸
func (a *API) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "未找到上传的图片", "success": 0})
		return
	}

	// 检查文件类型
	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "只允许上传图片文件", "success": 0})
		return
	}

	if err := os.MkdirAll(a.uploadDir, 0755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "创建上传目录失败", "success": 0})
		return
	}

	// 生成唯一文件名
	ext := strings.ToLower(filepath.Ext(file.Filename))
	newFilename := fmt.Sprintf("%s-%s%s", time.Now().Format("20060102"), uuid.New().String(), ext)
	filePath := filepath.Join(a.uploadDir, newFilename)

	if err := c.SaveUploadedFile(file, filePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存文件失败", "success": 0})
		return
	}

	fileURL := fmt.Sprintf("%s/%s", strings.TrimRight(a.uploadURL, "/"), newFilename)
	data := gin.H{
		"filePath": fileURL,
		"url":      fileURL,
	}

	switch ext {
	case ".jpg", ".jpeg", ".png":
		if thumbName, err := writeThumbnail(a.uploadDir, filePath, newFilename, ext); err == nil {
			data["thumbnailUrl"] = fmt.Sprintf("%s/%s", strings.TrimRight(a.uploadURL, "/"), thumbName)
		} else {
			c.Error(err)
		}
	case ".webp":
		if width, height, err := probeWebP(filePath); err == nil {
			data["width"] = width
			data["height"] = height
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": 1,
		"message": "上传成功",
		"data":    data,
	})
}

// writeThumbnail 为 JPEG/PNG 生成固定宽度的缩略图，返回缩略图文件名
func writeThumbnail(uploadDir, srcPath, srcName, ext string) (string, error) {
	f, err := os.Open(srcPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return "", err
	}

	bounds := src.Bounds()
	if bounds.Dx() <= thumbnailWidth {
		// 原图已经足够小，直接复用
		return srcName, nil
	}

	height := bounds.Dy() * thumbnailWidth / bounds.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, thumbnailWidth, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

	thumbName := strings.TrimSuffix(srcName, ext) + "-thumb" + ext
	out, err := os.Create(filepath.Join(uploadDir, thumbName))
	if err != nil {
		return "", err
	}
	defer out.Close()

	switch ext {
	case ".png":
		err = png.Encode(out, dst)
	default:
		err = jpeg.Encode(out, dst, &jpeg.Options{Quality: 85})
	}
	if err != nil {
		return "", err
	}
	return thumbName, nil
}

// probeWebP 读取 WebP 图片的宽高
func probeWebP(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, err := webp.DecodeConfig(f)
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}
