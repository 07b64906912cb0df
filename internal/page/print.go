package page

import (
	"fmt"
	"image"

	"github.com/bnema/pagecore/internal/application/port"
	"github.com/bnema/pagecore/internal/infrastructure/printing"
)

// RequestPrint asks the host to show its print UI for this page.
func (s *Session) RequestPrint() { s.host.Render.Print() }

// Print starts a PostScript job. The print session is created on first use.
func (s *Session) Print(job printing.Job) error {
	if s.closed {
		return ErrClosed
	}
	if err := s.ensurePrintSession().PrintStart(job); err != nil {
		return fmt.Errorf("start print job: %w", err)
	}
	return nil
}

// PDF starts a PDF export.
func (s *Session) PDF(job printing.Job) error {
	if s.closed {
		return ErrClosed
	}
	if err := s.ensurePrintSession().PDFStart(job); err != nil {
		return fmt.Errorf("start pdf job: %w", err)
	}
	return nil
}

func (s *Session) ensurePrintSession() *printing.Session {
	if s.printSession == nil {
		s.printSession = printing.NewSession(*s.logger)
	}
	return s.printSession
}

func (s *Session) printable() (port.PrintableContent, error) {
	frame := s.contentFrame()
	if frame == nil || s.printSession == nil {
		return nil, printing.ErrUnavailable
	}
	content, ok := frame.(port.PrintableContent)
	if !ok {
		return nil, printing.ErrUnavailable
	}
	return content, nil
}

// PrintSheetCount returns how many sheets the running job will produce.
func (s *Session) PrintSheetCount() int {
	content, err := s.printable()
	if err != nil {
		return 0
	}
	return s.printSession.SheetCount(content)
}

// PrintSpool renders sheet (zero based) of the main frame.
func (s *Session) PrintSpool(sheet int) error {
	content, err := s.printable()
	if err != nil {
		return err
	}
	return s.printSession.PrintSpool(content, sheet)
}

// PrintPreview returns the last spooled sheet scaled to w×h, or nil.
func (s *Session) PrintPreview(w, h int) image.Image {
	if s.printSession == nil {
		return nil
	}
	return s.printSession.ScaledSurface(w, h)
}

// PrintingFinished completes the job and releases the print session.
func (s *Session) PrintingFinished() error {
	if s.printSession == nil {
		return nil
	}
	err := s.printSession.PrintingFinished()
	s.printSession = nil
	return err
}
