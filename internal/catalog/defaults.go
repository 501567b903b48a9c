package catalog

// defaultMappings is the built-in extension map. Config [mappings] and the
// persisted store override these at startup.
var defaultMappings = map[string]string{
	// Text & documents
	"txt":  "TextFiles",
	"pdf":  "Documents",
	"docx": "Documents",
	"doc":  "Documents",
	"odt":  "Documents",
	"rtf":  "Documents",
	// Ebooks
	"epub": "Ebooks",
	"mobi": "Ebooks",
	// Spreadsheets
	"xlsx": "Spreadsheets",
	"xls":  "Spreadsheets",
	"ods":  "Spreadsheets",
	// Data files
	"csv":  "Data",
	"json": "Data",
	"xml":  "Data",
	// Images
	"jpg":  "Images",
	"jpeg": "Images",
	"png":  "Images",
	"gif":  "Images",
	"bmp":  "Images",
	"tiff": "Images",
	"webp": "Images",
	"heic": "Images",
	// Vector graphics & design
	"svg": "VectorGraphics",
	"psd": "Design_Files",
	"ai":  "Design_Files",
	// Archives
	"zip": "Archives",
	"rar": "Archives",
	"tar": "Archives",
	"gz":  "Archives",
	"7z":  "Archives",
	// Executables & installers
	"exe": "Executables_Installers",
	"msi": "Executables_Installers",
	"dmg": "Executables_Installers",
	"pkg": "Executables_Installers",
	"deb": "Executables_Installers",
	"rpm": "Executables_Installers",
	"jar": "Executables_Installers",
	// Audio
	"mp3":  "Music",
	"wav":  "Audio",
	"aac":  "Audio",
	"flac": "Audio",
	"ogg":  "Audio",
	"m4a":  "Audio",
	// Videos
	"mp4": "Videos",
	"avi": "Videos",
	"mkv": "Videos",
	"mov": "Videos",
	"wmv": "Videos",
	"flv": "Videos",
	// Logs & configs
	"log":  "LogFiles",
	"yaml": "Configs",
	"yml":  "Configs",
	// Fonts
	"ttf": "Fonts",
	"otf": "Fonts",
}
