// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tiffmeta

import "fmt"

// UnknownPrefix is used as prefix for the names of private tags.
const UnknownPrefix = "UnknownTag_"

// Namespace is the namespace a numeric tag id belongs to.
type Namespace uint8

const (
	// Private tags are ids not listed in the TIFF 6.0 baseline or extension tables.
	Private Namespace = iota
	// Baseline tags are the tags every TIFF reader must know about.
	Baseline
	// Extension tags are the TIFF 6.0 extension tags.
	Extension
)

func (ns Namespace) String() string {
	switch ns {
	case Baseline:
		return "Baseline"
	case Extension:
		return "Extension"
	default:
		return "Private"
	}
}

// BaselineTag is a tag id in the baseline namespace.
type BaselineTag uint16

// ExtensionTag is a tag id in the extension namespace.
type ExtensionTag uint16

const (
	TagNewSubfileType            BaselineTag = 0x00fe
	TagSubfileType               BaselineTag = 0x00ff
	TagImageWidth                BaselineTag = 0x0100
	TagImageLength               BaselineTag = 0x0101
	TagBitsPerSample             BaselineTag = 0x0102
	TagCompression               BaselineTag = 0x0103
	TagPhotometricInterpretation BaselineTag = 0x0106
	TagThreshholding             BaselineTag = 0x0107
	TagCellWidth                 BaselineTag = 0x0108
	TagCellLength                BaselineTag = 0x0109
	TagFillOrder                 BaselineTag = 0x010a
	TagImageDescription          BaselineTag = 0x010e
	TagMake                      BaselineTag = 0x010f
	TagModel                     BaselineTag = 0x0110
	TagStripOffsets              BaselineTag = 0x0111
	TagOrientation               BaselineTag = 0x0112
	TagSamplesPerPixel           BaselineTag = 0x0115
	TagRowsPerStrip              BaselineTag = 0x0116
	TagStripByteCounts           BaselineTag = 0x0117
	TagMinSampleValue            BaselineTag = 0x0118
	TagMaxSampleValue            BaselineTag = 0x0119
	TagXResolution               BaselineTag = 0x011a
	TagYResolution               BaselineTag = 0x011b
	TagPlanarConfiguration       BaselineTag = 0x011c
	TagFreeOffsets               BaselineTag = 0x0120
	TagFreeByteCounts            BaselineTag = 0x0121
	TagGrayResponseUnit          BaselineTag = 0x0122
	TagGrayResponseCurve         BaselineTag = 0x0123
	TagResolutionUnit            BaselineTag = 0x0128
	TagSoftware                  BaselineTag = 0x0131
	TagDateTime                  BaselineTag = 0x0132
	TagArtist                    BaselineTag = 0x013b
	TagHostComputer              BaselineTag = 0x013c
	TagColorMap                  BaselineTag = 0x0140
	TagExtraSamples              BaselineTag = 0x0152
	TagCopyright                 BaselineTag = 0x8298
)

const (
	TagDocumentName                ExtensionTag = 0x010d
	TagPageName                    ExtensionTag = 0x011d
	TagXPosition                   ExtensionTag = 0x011e
	TagYPosition                   ExtensionTag = 0x011f
	TagT4Options                   ExtensionTag = 0x0124
	TagT6Options                   ExtensionTag = 0x0125
	TagPageNumber                  ExtensionTag = 0x0129
	TagTransferFunction            ExtensionTag = 0x012d
	TagPredictor                   ExtensionTag = 0x013d
	TagWhitePoint                  ExtensionTag = 0x013e
	TagPrimaryChromaticities       ExtensionTag = 0x013f
	TagHalftoneHints               ExtensionTag = 0x0141
	TagTileWidth                   ExtensionTag = 0x0142
	TagTileLength                  ExtensionTag = 0x0143
	TagTileOffsets                 ExtensionTag = 0x0144
	TagTileByteCounts              ExtensionTag = 0x0145
	TagBadFaxLines                 ExtensionTag = 0x0146
	TagCleanFaxData                ExtensionTag = 0x0147
	TagConsecutiveBadFaxLines      ExtensionTag = 0x0148
	TagSubIFDs                     ExtensionTag = 0x014a
	TagInkSet                      ExtensionTag = 0x014c
	TagInkNames                    ExtensionTag = 0x014d
	TagNumberOfInks                ExtensionTag = 0x014e
	TagDotRange                    ExtensionTag = 0x0150
	TagTargetPrinter               ExtensionTag = 0x0151
	TagSampleFormat                ExtensionTag = 0x0153
	TagSMinSampleValue             ExtensionTag = 0x0154
	TagSMaxSampleValue             ExtensionTag = 0x0155
	TagTransferRange               ExtensionTag = 0x0156
	TagClipPath                    ExtensionTag = 0x0157
	TagXClipPathUnits              ExtensionTag = 0x0158
	TagYClipPathUnits              ExtensionTag = 0x0159
	TagIndexed                     ExtensionTag = 0x015a
	TagJPEGTables                  ExtensionTag = 0x015b
	TagOPIProxy                    ExtensionTag = 0x015f
	TagGlobalParametersIFD         ExtensionTag = 0x0190
	TagProfileType                 ExtensionTag = 0x0191
	TagFaxProfile                  ExtensionTag = 0x0192
	TagCodingMethods               ExtensionTag = 0x0193
	TagVersionYear                 ExtensionTag = 0x0194
	TagModeNumber                  ExtensionTag = 0x0195
	TagDecode                      ExtensionTag = 0x01b1
	TagDefaultImageColor           ExtensionTag = 0x01b2
	TagJPEGProc                    ExtensionTag = 0x0200
	TagJPEGInterchangeFormat       ExtensionTag = 0x0201
	TagJPEGInterchangeFormatLength ExtensionTag = 0x0202
	TagJPEGRestartInterval         ExtensionTag = 0x0203
	TagJPEGLosslessPredictors      ExtensionTag = 0x0205
	TagJPEGPointTransforms         ExtensionTag = 0x0206
	TagJPEGQTables                 ExtensionTag = 0x0207
	TagJPEGDCTables                ExtensionTag = 0x0208
	TagJPEGACTables                ExtensionTag = 0x0209
	TagYCbCrCoefficients           ExtensionTag = 0x0211
	TagYCbCrSubSampling            ExtensionTag = 0x0212
	TagYCbCrPositioning            ExtensionTag = 0x0213
	TagReferenceBlackWhite         ExtensionTag = 0x0214
	TagStripRowCounts              ExtensionTag = 0x022f
	TagXMP                         ExtensionTag = 0x02bc
	TagImageID                     ExtensionTag = 0x800d
	TagImageLayer                  ExtensionTag = 0x87ac
)

// Source: TIFF 6.0, section 8 (baseline) and part 2 (extensions).
var (
	baselineTags = map[BaselineTag]string{TagNewSubfileType: "NewSubfileType", TagSubfileType: "SubfileType", TagImageWidth: "ImageWidth", TagImageLength: "ImageLength", TagBitsPerSample: "BitsPerSample", TagCompression: "Compression", TagPhotometricInterpretation: "PhotometricInterpretation", TagThreshholding: "Threshholding", TagCellWidth: "CellWidth", TagCellLength: "CellLength", TagFillOrder: "FillOrder", TagImageDescription: "ImageDescription", TagMake: "Make", TagModel: "Model", TagStripOffsets: "StripOffsets", TagOrientation: "Orientation", TagSamplesPerPixel: "SamplesPerPixel", TagRowsPerStrip: "RowsPerStrip", TagStripByteCounts: "StripByteCounts", TagMinSampleValue: "MinSampleValue", TagMaxSampleValue: "MaxSampleValue", TagXResolution: "XResolution", TagYResolution: "YResolution", TagPlanarConfiguration: "PlanarConfiguration", TagFreeOffsets: "FreeOffsets", TagFreeByteCounts: "FreeByteCounts", TagGrayResponseUnit: "GrayResponseUnit", TagGrayResponseCurve: "GrayResponseCurve", TagResolutionUnit: "ResolutionUnit", TagSoftware: "Software", TagDateTime: "DateTime", TagArtist: "Artist", TagHostComputer: "HostComputer", TagColorMap: "ColorMap", TagExtraSamples: "ExtraSamples", TagCopyright: "Copyright"}

	extensionTags = map[ExtensionTag]string{TagDocumentName: "DocumentName", TagPageName: "PageName", TagXPosition: "XPosition", TagYPosition: "YPosition", TagT4Options: "T4Options", TagT6Options: "T6Options", TagPageNumber: "PageNumber", TagTransferFunction: "TransferFunction", TagPredictor: "Predictor", TagWhitePoint: "WhitePoint", TagPrimaryChromaticities: "PrimaryChromaticities", TagHalftoneHints: "HalftoneHints", TagTileWidth: "TileWidth", TagTileLength: "TileLength", TagTileOffsets: "TileOffsets", TagTileByteCounts: "TileByteCounts", TagBadFaxLines: "BadFaxLines", TagCleanFaxData: "CleanFaxData", TagConsecutiveBadFaxLines: "ConsecutiveBadFaxLines", TagSubIFDs: "SubIFDs", TagInkSet: "InkSet", TagInkNames: "InkNames", TagNumberOfInks: "NumberOfInks", TagDotRange: "DotRange", TagTargetPrinter: "TargetPrinter", TagSampleFormat: "SampleFormat", TagSMinSampleValue: "SMinSampleValue", TagSMaxSampleValue: "SMaxSampleValue", TagTransferRange: "TransferRange", TagClipPath: "ClipPath", TagXClipPathUnits: "XClipPathUnits", TagYClipPathUnits: "YClipPathUnits", TagIndexed: "Indexed", TagJPEGTables: "JPEGTables", TagOPIProxy: "OPIProxy", TagGlobalParametersIFD: "GlobalParametersIFD", TagProfileType: "ProfileType", TagFaxProfile: "FaxProfile", TagCodingMethods: "CodingMethods", TagVersionYear: "VersionYear", TagModeNumber: "ModeNumber", TagDecode: "Decode", TagDefaultImageColor: "DefaultImageColor", TagJPEGProc: "JPEGProc", TagJPEGInterchangeFormat: "JPEGInterchangeFormat", TagJPEGInterchangeFormatLength: "JPEGInterchangeFormatLength", TagJPEGRestartInterval: "JPEGRestartInterval", TagJPEGLosslessPredictors: "JPEGLosslessPredictors", TagJPEGPointTransforms: "JPEGPointTransforms", TagJPEGQTables: "JPEGQTables", TagJPEGDCTables: "JPEGDCTables", TagJPEGACTables: "JPEGACTables", TagYCbCrCoefficients: "YCbCrCoefficients", TagYCbCrSubSampling: "YCbCrSubSampling", TagYCbCrPositioning: "YCbCrPositioning", TagReferenceBlackWhite: "ReferenceBlackWhite", TagStripRowCounts: "StripRowCounts", TagXMP: "XMP", TagImageID: "ImageID", TagImageLayer: "ImageLayer"}
)

// TagID identifies a tag. Two TagIDs are equal if both namespace and numeric id match,
// so TagID can be used as a map key.
type TagID struct {
	ns   Namespace
	code uint16
}

// NewTagID classifies the numeric tag id code.
// The baseline table is checked first, then the extension table; anything else is a private tag.
func NewTagID(code uint16) TagID {
	if _, ok := baselineTags[BaselineTag(code)]; ok {
		return TagID{ns: Baseline, code: code}
	}
	if _, ok := extensionTags[ExtensionTag(code)]; ok {
		return TagID{ns: Extension, code: code}
	}
	return TagID{ns: Private, code: code}
}

// PrivateTagID returns the private tag identity for code.
// The code is not reclassified: PrivateTagID(0x0100) is not equal to TagImageWidth.ID()
// and will not find a decoded ImageWidth tag. Use NewTagID to classify a numeric id.
func PrivateTagID(code uint16) TagID {
	return TagID{ns: Private, code: code}
}

// ID returns the identity of t.
func (t BaselineTag) ID() TagID {
	return TagID{ns: Baseline, code: uint16(t)}
}

func (t BaselineTag) String() string {
	return t.ID().String()
}

// ID returns the identity of t.
func (t ExtensionTag) ID() TagID {
	return TagID{ns: Extension, code: uint16(t)}
}

func (t ExtensionTag) String() string {
	return t.ID().String()
}

// Namespace returns the namespace of the tag.
func (t TagID) Namespace() Namespace {
	return t.ns
}

// Numeric returns the numeric tag id as stored on disk.
func (t TagID) Numeric() uint16 {
	return t.code
}

// Baseline returns the baseline tag and true if t is in the baseline namespace.
func (t TagID) Baseline() (BaselineTag, bool) {
	return BaselineTag(t.code), t.ns == Baseline
}

// Extension returns the extension tag and true if t is in the extension namespace.
func (t TagID) Extension() (ExtensionTag, bool) {
	return ExtensionTag(t.code), t.ns == Extension
}

// Name returns the tag name, e.g. "ImageWidth".
// Private tags are named UnknownPrefix followed by the hex id, e.g. "UnknownTag_0x8769".
func (t TagID) Name() string {
	var name string
	switch t.ns {
	case Baseline:
		name = baselineTags[BaselineTag(t.code)]
	case Extension:
		name = extensionTags[ExtensionTag(t.code)]
	}
	if name == "" {
		return fmt.Sprintf("%s0x%04x", UnknownPrefix, t.code)
	}
	return name
}

// String returns e.g. "Baseline.ImageWidth(0x0100)" or "Private(0x8769)".
func (t TagID) String() string {
	if t.ns == Private {
		return fmt.Sprintf("Private(0x%04x)", t.code)
	}
	return fmt.Sprintf("%s.%s(0x%04x)", t.ns, t.Name(), t.code)
}
