package repositories

import (
	"fmt"

	"kankou/internal/models/dataset_models"
)

// Column names of the source files.
const (
	colSpotName        = "観光地名"
	colSpotTags        = "タグ"
	colSpotAddress     = "住所"
	colSpotImage       = "画像"
	colSpotPhone       = "電話番号"
	colSpotHomepage    = "ホームページ"
	colSpotCoordinates = "緯度経度"
	colSpotDescription = "詳細説明"

	ColAnswerIntent    = "Q1. 今やりたいことは？"
	ColAnswerStyle     = "Q2. どんな風に観光したいですか？"
	ColAnswerAge       = "Q3. あなたの年代は？"
	ColAnswerTransport = "Q4. 交通手段は？"

	colStoryHeader  = "ヘッダー"
	colStoryTitle   = "タイトル"
	colStoryAudioJA = "音声"
	colStoryAudioEN = "音声英語"
	colStoryAudioZH = "音声中国"
)

func galleryColumn(i int) string {
	return fmt.Sprintf("追加画像%d", i)
}

func suggestionColumn(i int) string {
	return fmt.Sprintf("Q1による観光地%d", i)
}

var storyTrackColumns = []struct {
	column   string
	language string
}{
	{colStoryAudioJA, dataset_models.LanguageJapanese},
	{colStoryAudioEN, dataset_models.LanguageEnglish},
	{colStoryAudioZH, dataset_models.LanguageChinese},
}
