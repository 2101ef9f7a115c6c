package config

import "time"

// Config is the root application configuration.
type Config struct {
	HTTP   HTTPConfig   `yaml:"http"`
	Baidu  BaiduConfig  `yaml:"baidu"`
	MDBG   MDBGConfig   `yaml:"mdbg"`
	DeepL  DeepLConfig  `yaml:"deepl"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// HTTPConfig holds settings shared by every outbound HTTP client.
type HTTPConfig struct {
	Timeout   time.Duration `yaml:"timeout"    env:"HTTP_TIMEOUT"    env-default:"10s"`
	UserAgent string        `yaml:"user_agent" env:"HTTP_USER_AGENT"`
}

// BaiduConfig holds the Baidu Hanyu endpoints and the schema revision used per word type.
type BaiduConfig struct {
	CharacterURL string `yaml:"character_url" env:"BAIDU_CHARACTER_URL" env-default:"https://hanyuapp.baidu.com/dictapp/swan/chardetail"`
	WordURL      string `yaml:"word_url"      env:"BAIDU_WORD_URL"      env-default:"https://hanyuapp.baidu.com/dictapp/swan/termdetail"`
	PageURL      string `yaml:"page_url"      env:"BAIDU_PAGE_URL"      env-default:"https://dict.baidu.com/s"`
	TermSchema   int    `yaml:"term_schema"   env:"BAIDU_TERM_SCHEMA"   env-default:"2"`
	IdiomSchema  int    `yaml:"idiom_schema"  env:"BAIDU_IDIOM_SCHEMA"  env-default:"2"`
}

// MDBGConfig holds the bilingual dictionary endpoints.
type MDBGConfig struct {
	APIURL  string `yaml:"api_url"  env:"MDBG_API_URL"  env-default:"https://zhres.herokuapp.com/api/vocab/match"`
	SiteURL string `yaml:"site_url" env:"MDBG_SITE_URL" env-default:"https://www.mdbg.net/chinese/dictionary"`
}

// DeepLConfig holds machine translation settings. An empty APIKey is not a
// load error; it is reported when a translation is attempted.
type DeepLConfig struct {
	URL        string `yaml:"url"         env:"DEEPL_URL"         env-default:"https://api-free.deepl.com/v2/translate"`
	APIKey     string `yaml:"api_key"     env:"DEEPL_API_KEY"`
	SourceLang string `yaml:"source_lang" env:"DEEPL_SOURCE_LANG" env-default:"zh"`
	TargetLang string `yaml:"target_lang" env:"DEEPL_TARGET_LANG" env-default:"en"`
}

// OutputConfig controls how batch results are written.
type OutputConfig struct {
	Format string `yaml:"format" env:"OUTPUT_FORMAT" env-default:"text"`
	Path   string `yaml:"path"   env:"OUTPUT_PATH"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// Output formats.
const (
	OutputFormatText = "text"
	OutputFormatTSV  = "tsv"
)
