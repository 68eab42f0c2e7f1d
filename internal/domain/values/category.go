package values

import (
	"sort"
	"strings"
)

// CategoryTier classifies a category in the freedesktop menu specification.
type CategoryTier int

const (
	// TierMain categories must be supported by every conforming desktop.
	TierMain CategoryTier = 1
	// TierAdditional categories refine a main category.
	TierAdditional CategoryTier = 2
	// TierReserved categories have a desktop-specific meaning.
	TierReserved CategoryTier = 3
)

// String returns the tier label
func (t CategoryTier) String() string {
	switch t {
	case TierMain:
		return "main"
	case TierAdditional:
		return "additional"
	case TierReserved:
		return "reserved"
	default:
		return "unknown"
	}
}

// Category is a registered menu category.
type Category int

// Registered categories, in registry order.
const (
	CategoryUnknown Category = iota
	CategoryAudioVideo
	CategoryAudio
	CategoryVideo
	CategoryDevelopment
	CategoryEducation
	CategoryGame
	CategoryGraphics
	CategoryNetwork
	CategoryOffice
	CategoryScience
	CategorySettings
	CategorySystem
	CategoryUtility
	CategoryBuilding
	CategoryDebugger
	CategoryIDE
	CategoryGUIDesigner
	CategoryProfiling
	CategoryRevisionControl
	CategoryTranslation
	CategoryCalendar
	CategoryContactManagement
	CategoryDatabase
	CategoryDictionary
	CategoryChart
	CategoryEmail
	CategoryFinance
	CategoryFlowChart
	CategoryPDA
	CategoryProjectManagement
	CategoryPresentation
	CategorySpreadsheet
	CategoryWordProcessor
	Category2DGraphics
	CategoryVectorGraphics
	CategoryRasterGraphics
	Category3DGraphics
	CategoryScanning
	CategoryOCR
	CategoryPhotography
	CategoryPublishing
	CategoryViewer
	CategoryTextTools
	CategoryDesktopSettings
	CategoryHardwareSettings
	CategoryPrinting
	CategoryPackageManager
	CategoryDialup
	CategoryInstantMessaging
	CategoryChat
	CategoryIRCClient
	CategoryFeed
	CategoryFileTransfer
	CategoryHamRadio
	CategoryNews
	CategoryP2P
	CategoryRemoteAccess
	CategoryTelephony
	CategoryTelephonyTools
	CategoryVideoConference
	CategoryWebBrowser
	CategoryWebDevelopment
	CategoryMidi
	CategoryMixer
	CategorySequencer
	CategoryTuner
	CategoryTV
	CategoryAudioVideoEditing
	CategoryPlayer
	CategoryRecorder
	CategoryDiscBurning
	CategoryActionGame
	CategoryAdventureGame
	CategoryArcadeGame
	CategoryBoardGame
	CategoryBlocksGame
	CategoryCardGame
	CategoryKidsGame
	CategoryLogicGame
	CategoryRolePlaying
	CategoryShooter
	CategorySimulation
	CategorySportsGame
	CategoryStrategyGame
	CategoryArt
	CategoryConstruction
	CategoryMusic
	CategoryLanguages
	CategoryArtificialIntelligence
	CategoryAstronomy
	CategoryBiology
	CategoryChemistry
	CategoryComputerScience
	CategoryDataVisualization
	CategoryEconomy
	CategoryElectricity
	CategoryGeography
	CategoryGeology
	CategoryGeoscience
	CategoryHistory
	CategoryHumanities
	CategoryImageProcessing
	CategoryLiterature
	CategoryMaps
	CategoryMath
	CategoryNumericalAnalysis
	CategoryMedicalSoftware
	CategoryPhysics
	CategoryRobotics
	CategorySpirituality
	CategorySports
	CategoryParallelComputing
	CategoryAmusement
	CategoryArchiving
	CategoryCompression
	CategoryElectronics
	CategoryEmulator
	CategoryEngineering
	CategoryFileTools
	CategoryFileManager
	CategoryTerminalEmulator
	CategoryFilesystem
	CategoryMonitor
	CategorySecurity
	CategoryAccessibility
	CategoryCalculator
	CategoryClock
	CategoryTextEditor
	CategoryDocumentation
	CategoryAdult
	CategoryCore
	CategoryKDE
	CategoryGNOME
	CategoryXFCE
	CategoryGTK
	CategoryQt
	CategoryMotif
	CategoryJava
	CategoryConsoleOnly
	CategoryScreensaver
	CategoryTrayIcon
	CategoryApplet
	CategoryShell
)

type categoryInfo struct {
	id   string
	name string
	tier CategoryTier
}

var categoryTable = map[Category]categoryInfo{
	CategoryAudioVideo:             {"AUDIOVIDEO", "AudioVideo", TierMain},
	CategoryAudio:                  {"AUDIO", "Audio", TierMain},
	CategoryVideo:                  {"VIDEO", "Video", TierMain},
	CategoryDevelopment:            {"DEVELOPMENT", "Development", TierMain},
	CategoryEducation:              {"EDUCATION", "Education", TierMain},
	CategoryGame:                   {"GAME", "Game", TierMain},
	CategoryGraphics:               {"GRAPHICS", "Graphics", TierMain},
	CategoryNetwork:                {"NETWORK", "Network", TierMain},
	CategoryOffice:                 {"OFFICE", "Office", TierMain},
	CategoryScience:                {"SCIENCE", "Science", TierMain},
	CategorySettings:               {"SETTINGS", "Settings", TierMain},
	CategorySystem:                 {"SYSTEM", "System", TierMain},
	CategoryUtility:                {"UTILITY", "Utility", TierMain},
	CategoryBuilding:               {"BUILDING", "Building", TierAdditional},
	CategoryDebugger:               {"DEBUGGER", "Debugger", TierAdditional},
	CategoryIDE:                    {"IDE", "IDE", TierAdditional},
	CategoryGUIDesigner:            {"GUIDESIGNER", "GUIDesigner", TierAdditional},
	CategoryProfiling:              {"PROFILING", "Profiling", TierAdditional},
	CategoryRevisionControl:        {"REVISIONCONTROL", "RevisionControl", TierAdditional},
	CategoryTranslation:            {"TRANSLATION", "Translation", TierAdditional},
	CategoryCalendar:               {"CALENDAR", "Calendar", TierAdditional},
	CategoryContactManagement:      {"CONTACTMANAGEMENT", "ContactManagement", TierAdditional},
	CategoryDatabase:               {"DATABASE", "Database", TierAdditional},
	CategoryDictionary:             {"DICTIONARY", "Dictionary", TierAdditional},
	CategoryChart:                  {"CHART", "Chart", TierAdditional},
	CategoryEmail:                  {"EMAIL", "Email", TierAdditional},
	CategoryFinance:                {"FINANCE", "Finance", TierAdditional},
	CategoryFlowChart:              {"FLOWCHART", "FlowChart", TierAdditional},
	CategoryPDA:                    {"PDA", "PDA", TierAdditional},
	CategoryProjectManagement:      {"PROJECTMANAGEMENT", "ProjectManagement", TierAdditional},
	CategoryPresentation:           {"PRESENTATION", "Presentation", TierAdditional},
	CategorySpreadsheet:            {"SPREADSHEET", "Spreadsheet", TierAdditional},
	CategoryWordProcessor:          {"WORDPROCESSOR", "WordProcessor", TierAdditional},
	Category2DGraphics:             {"TWODGRAPHICS", "2DGraphics", TierAdditional},
	CategoryVectorGraphics:         {"VECTORGRAPHICS", "VectorGraphics", TierAdditional},
	CategoryRasterGraphics:         {"RASTERGRAPHICS", "RasterGraphics", TierAdditional},
	Category3DGraphics:             {"THREEDGRAPHICS", "3DGraphics", TierAdditional},
	CategoryScanning:               {"SCANNING", "Scanning", TierAdditional},
	CategoryOCR:                    {"OCR", "OCR", TierAdditional},
	CategoryPhotography:            {"PHOTOGRAPHY", "Photography", TierAdditional},
	CategoryPublishing:             {"PUBLISHING", "Publishing", TierAdditional},
	CategoryViewer:                 {"VIEWER", "Viewer", TierAdditional},
	CategoryTextTools:              {"TEXTTOOLS", "TextTools", TierAdditional},
	CategoryDesktopSettings:        {"DESKTOPSETTINGS", "DesktopSettings", TierAdditional},
	CategoryHardwareSettings:       {"HARDWARESETTINGS", "HardwareSettings", TierAdditional},
	CategoryPrinting:               {"PRINTING", "Printing", TierAdditional},
	CategoryPackageManager:         {"PACKAGEMANAGER", "PackageManager", TierAdditional},
	CategoryDialup:                 {"DIALUP", "Dialup", TierAdditional},
	CategoryInstantMessaging:       {"INSTANTMESSAGING", "InstantMessaging", TierAdditional},
	CategoryChat:                   {"CHAT", "Chat", TierAdditional},
	CategoryIRCClient:              {"IRCCLIENT", "IRCClient", TierAdditional},
	CategoryFeed:                   {"FEED", "Feed", TierAdditional},
	CategoryFileTransfer:           {"FILETRANSFER", "FileTransfer", TierAdditional},
	CategoryHamRadio:               {"HAMRADIO", "HamRadio", TierAdditional},
	CategoryNews:                   {"NEWS", "News", TierAdditional},
	CategoryP2P:                    {"P2P", "P2P", TierAdditional},
	CategoryRemoteAccess:           {"REMOTEACCESS", "RemoteAccess", TierAdditional},
	CategoryTelephony:              {"TELEPHONY", "Telephony", TierAdditional},
	CategoryTelephonyTools:         {"TELEPHONYTOOLS", "TelephonyTools", TierAdditional},
	CategoryVideoConference:        {"VIDEOCONFERENCE", "VideoConference", TierAdditional},
	CategoryWebBrowser:             {"WEBBROWSER", "WebBrowser", TierAdditional},
	CategoryWebDevelopment:         {"WEBDEVELOPMENT", "WebDevelopment", TierAdditional},
	CategoryMidi:                   {"MIDI", "Midi", TierAdditional},
	CategoryMixer:                  {"MIXER", "Mixer", TierAdditional},
	CategorySequencer:              {"SEQUENCER", "Sequencer", TierAdditional},
	CategoryTuner:                  {"TUNER", "Tuner", TierAdditional},
	CategoryTV:                     {"TV", "TV", TierAdditional},
	CategoryAudioVideoEditing:      {"AUDIOVIDEOEDITING", "AudioVideoEditing", TierAdditional},
	CategoryPlayer:                 {"PLAYER", "Player", TierAdditional},
	CategoryRecorder:               {"RECORDER", "Recorder", TierAdditional},
	CategoryDiscBurning:            {"DISCBURNING", "DiscBurning", TierAdditional},
	CategoryActionGame:             {"ACTIONGAME", "ActionGame", TierAdditional},
	CategoryAdventureGame:          {"ADVENTUREGAME", "AdventureGame", TierAdditional},
	CategoryArcadeGame:             {"ARCADEGAME", "ArcadeGame", TierAdditional},
	CategoryBoardGame:              {"BOARDGAME", "BoardGame", TierAdditional},
	CategoryBlocksGame:             {"BLOCKSGAME", "BlocksGame", TierAdditional},
	CategoryCardGame:               {"CARDGAME", "CardGame", TierAdditional},
	CategoryKidsGame:               {"KIDSGAME", "KidsGame", TierAdditional},
	CategoryLogicGame:              {"LOGICGAME", "LogicGame", TierAdditional},
	CategoryRolePlaying:            {"ROLEPLAYING", "RolePlaying", TierAdditional},
	CategoryShooter:                {"SHOOTER", "Shooter", TierAdditional},
	CategorySimulation:             {"SIMULATION", "Simulation", TierAdditional},
	CategorySportsGame:             {"SPORTSGAME", "SportsGame", TierAdditional},
	CategoryStrategyGame:           {"STRATEGYGAME", "StrategyGame", TierAdditional},
	CategoryArt:                    {"ART", "Art", TierAdditional},
	CategoryConstruction:           {"CONSTRUCTION", "Construction", TierAdditional},
	CategoryMusic:                  {"MUSIC", "Music", TierAdditional},
	CategoryLanguages:              {"LANGUAGES", "Languages", TierAdditional},
	CategoryArtificialIntelligence: {"ARTIFICIALINTELLIGENCE", "ArtificialIntelligence", TierAdditional},
	CategoryAstronomy:              {"ASTRONOMY", "Astronomy", TierAdditional},
	CategoryBiology:                {"BIOLOGY", "Biology", TierAdditional},
	CategoryChemistry:              {"CHEMISTRY", "Chemistry", TierAdditional},
	CategoryComputerScience:        {"COMPUTERSCIENCE", "ComputerScience", TierAdditional},
	CategoryDataVisualization:      {"DATAVISUALIZATION", "DataVisualization", TierAdditional},
	CategoryEconomy:                {"ECONOMY", "Economy", TierAdditional},
	CategoryElectricity:            {"ELECTRICITY", "Electricity", TierAdditional},
	CategoryGeography:              {"GEOGRAPHY", "Geography", TierAdditional},
	CategoryGeology:                {"GEOLOGY", "Geology", TierAdditional},
	CategoryGeoscience:             {"GEOSCIENCE", "Geoscience", TierAdditional},
	CategoryHistory:                {"HISTORY", "History", TierAdditional},
	CategoryHumanities:             {"HUMANITIES", "Humanities", TierAdditional},
	CategoryImageProcessing:        {"IMAGEPROCESSING", "ImageProcessing", TierAdditional},
	CategoryLiterature:             {"LITERATURE", "Literature", TierAdditional},
	CategoryMaps:                   {"MAPS", "Maps", TierAdditional},
	CategoryMath:                   {"MATH", "Math", TierAdditional},
	CategoryNumericalAnalysis:      {"NUMERICALANALYSIS", "NumericalAnalysis", TierAdditional},
	CategoryMedicalSoftware:        {"MEDICALSOFTWARE", "MedicalSoftware", TierAdditional},
	CategoryPhysics:                {"PHYSICS", "Physics", TierAdditional},
	CategoryRobotics:               {"ROBOTICS", "Robotics", TierAdditional},
	CategorySpirituality:           {"SPIRITUALITY", "Spirituality", TierAdditional},
	CategorySports:                 {"SPORTS", "Sports", TierAdditional},
	CategoryParallelComputing:      {"PARALLELCOMPUTING", "ParallelComputing", TierAdditional},
	CategoryAmusement:              {"AMUSEMENT", "Amusement", TierAdditional},
	CategoryArchiving:              {"ARCHIVING", "Archiving", TierAdditional},
	CategoryCompression:            {"COMPRESSION", "Compression", TierAdditional},
	CategoryElectronics:            {"ELECTRONICS", "Electronics", TierAdditional},
	CategoryEmulator:               {"EMULATOR", "Emulator", TierAdditional},
	CategoryEngineering:            {"ENGINEERING", "Engineering", TierAdditional},
	CategoryFileTools:              {"FILETOOLS", "FileTools", TierAdditional},
	CategoryFileManager:            {"FILEMANAGER", "FileManager", TierAdditional},
	CategoryTerminalEmulator:       {"TERMINALEMULATOR", "TerminalEmulator", TierAdditional},
	CategoryFilesystem:             {"FILESYSTEM", "Filesystem", TierAdditional},
	CategoryMonitor:                {"MONITOR", "Monitor", TierAdditional},
	CategorySecurity:               {"SECURITY", "Security", TierAdditional},
	CategoryAccessibility:          {"ACCESSIBILITY", "Accessibility", TierAdditional},
	CategoryCalculator:             {"CALCULATOR", "Calculator", TierAdditional},
	CategoryClock:                  {"CLOCK", "Clock", TierAdditional},
	CategoryTextEditor:             {"TEXTEDITOR", "TextEditor", TierAdditional},
	CategoryDocumentation:          {"DOCUMENTATION", "Documentation", TierAdditional},
	CategoryAdult:                  {"ADULT", "Adult", TierAdditional},
	CategoryCore:                   {"CORE", "Core", TierAdditional},
	CategoryKDE:                    {"KDE", "KDE", TierAdditional},
	CategoryGNOME:                  {"GNOME", "GNOME", TierAdditional},
	CategoryXFCE:                   {"XFCE", "XFCE", TierAdditional},
	CategoryGTK:                    {"GTK", "GTK", TierAdditional},
	CategoryQt:                     {"QT", "Qt", TierAdditional},
	CategoryMotif:                  {"MOTIF", "Motif", TierAdditional},
	CategoryJava:                   {"JAVA", "Java", TierAdditional},
	CategoryConsoleOnly:            {"CONSOLEONLY", "ConsoleOnly", TierAdditional},
	CategoryScreensaver:            {"SCREENSAVER", "Screensaver", TierReserved},
	CategoryTrayIcon:               {"TRAYICON", "TrayIcon", TierReserved},
	CategoryApplet:                 {"APPLET", "Applet", TierReserved},
	CategoryShell:                  {"SHELL", "Shell", TierReserved},
}

var categoryLookup = buildCategoryLookup()

func buildCategoryLookup() map[string]Category {
	lookup := make(map[string]Category, len(categoryTable)*2)
	for c, info := range categoryTable {
		lookup[strings.ToLower(info.id)] = c
		lookup[strings.ToLower(info.name)] = c
	}
	return lookup
}

// ParseCategory resolves a category by identifier (e.g. "NETWORK") or by
// display name (e.g. "Network"). Matching is case-insensitive.
func ParseCategory(s string) (Category, error) {
	c, ok := categoryLookup[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return CategoryUnknown, NewValidationError("category", s, "not a registered category")
	}
	return c, nil
}

// AllCategories returns every registered category in declaration order.
func AllCategories() []Category {
	all := make([]Category, 0, len(categoryTable))
	for c := range categoryTable {
		all = append(all, c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })
	return all
}

// String returns the name written to the Categories key.
func (c Category) String() string {
	return categoryTable[c].name
}

// ID returns the upper-case identifier, e.g. "AUDIOVIDEO".
func (c Category) ID() string {
	return categoryTable[c].id
}

// Tier returns the classification tier.
func (c Category) Tier() CategoryTier {
	return categoryTable[c].tier
}

// IsValid returns true for registered categories.
func (c Category) IsValid() bool {
	_, ok := categoryTable[c]
	return ok
}
