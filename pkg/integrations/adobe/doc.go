// Package adobe resolves direct Adobe Acrobat Reader downloads.
//
// winget's manifest for Acrobat Reader points at a generic bootstrapper.
// Adobe publishes version-addressed MSP patches and full EXE installers on
// its download host; this resolver derives both candidates from the
// package version and adopts the first one that actually exists.
//
// For version 25.001.20997 the flattened token is 2500120997 and the
// candidates are, in probe order:
//
//	https://ardownload2.adobe.com/pub/adobe/acrobat/win/AcrobatDC/2500120997/AcroRdrDCUpd2500120997_MUI.msp
//	https://ardownload2.adobe.com/pub/adobe/reader/win/AcrobatDC/2500120997/AcroRdrDC2500120997_MUI.exe
//
// When neither probe succeeds the record keeps the URL and kind parsed
// from winget.
package adobe
